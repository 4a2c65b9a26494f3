package guard

// Guard0 guards an action with no resource, such as a deferred message or
// a counter update that must happen on scope exit.
type Guard0 struct {
	state
	deleter func() error
}

// New0 returns an armed guard that calls deleter when closed.
func New0(deleter func() error) *Guard0 {
	mustDeleter(deleter != nil, "New0")
	g := &Guard0{deleter: deleter}
	g.kind = "Guard0"
	g.armed = true
	return g
}

// Invoke calls the deleter if the guard is armed. With Once the guard is
// disarmed afterwards, with Again it stays armed.
func (g *Guard0) Invoke(mode Mode) *Guard0 {
	g.fire(mode, g.deleter)
	return g
}

// Close runs the deleter if armed and disarms the guard.
func (g *Guard0) Close() error {
	return g.close(g.deleter)
}

// Reset runs the deleter if armed and leaves the guard armed.
func (g *Guard0) Reset() *Guard0 {
	return g.Invoke(Again)
}

// Release disarms the guard without running the deleter.
func (g *Guard0) Release() {
	g.disarm()
}

// ReleaseAll disarms the guard without running the deleter.
func (g *Guard0) ReleaseAll() {
	g.disarm()
}

// Move returns a new guard owning the deleter and the arming of g.
// g is left disarmed.
func (g *Guard0) Move() *Guard0 {
	m := &Guard0{deleter: g.deleter}
	m.take(&g.state)
	return m
}

// Deleter returns the guard's deleter.
func (g *Guard0) Deleter() func() error {
	return g.deleter
}
