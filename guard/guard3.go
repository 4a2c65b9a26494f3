package guard

// Guard3 guards three resources released by one deleter.
type Guard3[R0, R1, R2 any] struct {
	state
	deleter func(R0, R1, R2) error
	r0      R0
	r1      R1
	r2      R2
}

// New3 returns an armed guard that calls deleter(r0, r1, r2) when closed.
func New3[R0, R1, R2 any](deleter func(R0, R1, R2) error, r0 R0, r1 R1, r2 R2) *Guard3[R0, R1, R2] {
	mustDeleter(deleter != nil, "New3")
	g := &Guard3[R0, R1, R2]{deleter: deleter, r0: r0, r1: r1, r2: r2}
	g.kind = "Guard3"
	g.armed = true
	return g
}

// Invoke calls the deleter if the guard is armed. With Once the guard is
// disarmed afterwards, with Again it stays armed.
func (g *Guard3[R0, R1, R2]) Invoke(mode Mode) *Guard3[R0, R1, R2] {
	g.fire(mode, g.call)
	return g
}

// Close runs the deleter if armed and disarms the guard.
func (g *Guard3[R0, R1, R2]) Close() error {
	return g.close(g.call)
}

func (g *Guard3[R0, R1, R2]) call() error {
	return g.deleter(g.r0, g.r1, g.r2)
}

// Reset releases the current resources if armed and replaces them.
func (g *Guard3[R0, R1, R2]) Reset(r0 R0, r1 R1, r2 R2) *Guard3[R0, R1, R2] {
	g.Invoke(Again)
	g.r0, g.r1, g.r2 = r0, r1, r2
	return g
}

// Release disarms the guard and returns the first resource.
func (g *Guard3[R0, R1, R2]) Release() R0 {
	g.disarm()
	return g.r0
}

// ReleaseAll disarms the guard and returns every resource.
func (g *Guard3[R0, R1, R2]) ReleaseAll() (R0, R1, R2) {
	g.disarm()
	return g.r0, g.r1, g.r2
}

// Move returns a new guard owning the deleter, the resources and the
// arming of g. g is left disarmed with zero resources.
func (g *Guard3[R0, R1, R2]) Move() *Guard3[R0, R1, R2] {
	m := &Guard3[R0, R1, R2]{deleter: g.deleter, r0: g.r0, r1: g.r1, r2: g.r2}
	m.take(&g.state)
	var (
		z0 R0
		z1 R1
		z2 R2
	)
	g.r0, g.r1, g.r2 = z0, z1, z2
	return m
}

// Deleter returns the guard's deleter.
func (g *Guard3[R0, R1, R2]) Deleter() func(R0, R1, R2) error {
	return g.deleter
}

// Get0 returns the first resource.
func (g *Guard3[R0, R1, R2]) Get0() R0 {
	return g.r0
}

// Get1 returns the second resource.
func (g *Guard3[R0, R1, R2]) Get1() R1 {
	return g.r1
}

// Get2 returns the third resource.
func (g *Guard3[R0, R1, R2]) Get2() R2 {
	return g.r2
}

// Ref0 returns a pointer to the first stored resource.
func (g *Guard3[R0, R1, R2]) Ref0() *R0 {
	return &g.r0
}

// Ref1 returns a pointer to the second stored resource.
func (g *Guard3[R0, R1, R2]) Ref1() *R1 {
	return &g.r1
}

// Ref2 returns a pointer to the third stored resource.
func (g *Guard3[R0, R1, R2]) Ref2() *R2 {
	return &g.r2
}

// First returns the first resource.
func (g *Guard3[R0, R1, R2]) First() R0 {
	return g.r0
}

// FirstAddr returns the address of the first stored resource.
func (g *Guard3[R0, R1, R2]) FirstAddr() *R0 {
	return &g.r0
}
