package guard

// Guard2 guards two resources released together, for example a descriptor
// and the final message written to it before closing.
type Guard2[R0, R1 any] struct {
	state
	deleter func(R0, R1) error
	r0      R0
	r1      R1
}

// New2 returns an armed guard that calls deleter(r0, r1) when closed.
func New2[R0, R1 any](deleter func(R0, R1) error, r0 R0, r1 R1) *Guard2[R0, R1] {
	mustDeleter(deleter != nil, "New2")
	g := &Guard2[R0, R1]{deleter: deleter, r0: r0, r1: r1}
	g.kind = "Guard2"
	g.armed = true
	return g
}

// Invoke calls the deleter if the guard is armed. With Once the guard is
// disarmed afterwards, with Again it stays armed.
func (g *Guard2[R0, R1]) Invoke(mode Mode) *Guard2[R0, R1] {
	g.fire(mode, g.call)
	return g
}

// Close runs the deleter if armed and disarms the guard.
func (g *Guard2[R0, R1]) Close() error {
	return g.close(g.call)
}

func (g *Guard2[R0, R1]) call() error {
	return g.deleter(g.r0, g.r1)
}

// Reset releases the current resources if armed and replaces them.
// The guard is armed for the new resources afterwards.
func (g *Guard2[R0, R1]) Reset(r0 R0, r1 R1) *Guard2[R0, R1] {
	g.Invoke(Again)
	g.r0, g.r1 = r0, r1
	return g
}

// Release disarms the guard and returns the first resource.
func (g *Guard2[R0, R1]) Release() R0 {
	g.disarm()
	return g.r0
}

// ReleaseAll disarms the guard and returns both resources.
func (g *Guard2[R0, R1]) ReleaseAll() (R0, R1) {
	g.disarm()
	return g.r0, g.r1
}

// Move returns a new guard owning the deleter, the resources and the
// arming of g. g is left disarmed with zero resources.
func (g *Guard2[R0, R1]) Move() *Guard2[R0, R1] {
	m := &Guard2[R0, R1]{deleter: g.deleter, r0: g.r0, r1: g.r1}
	m.take(&g.state)
	var (
		z0 R0
		z1 R1
	)
	g.r0, g.r1 = z0, z1
	return m
}

// Deleter returns the guard's deleter.
func (g *Guard2[R0, R1]) Deleter() func(R0, R1) error {
	return g.deleter
}

// Get0 returns the first resource.
func (g *Guard2[R0, R1]) Get0() R0 {
	return g.r0
}

// Get1 returns the second resource.
func (g *Guard2[R0, R1]) Get1() R1 {
	return g.r1
}

// Ref0 returns a pointer to the first stored resource.
func (g *Guard2[R0, R1]) Ref0() *R0 {
	return &g.r0
}

// Ref1 returns a pointer to the second stored resource.
func (g *Guard2[R0, R1]) Ref1() *R1 {
	return &g.r1
}

// First returns the first resource.
func (g *Guard2[R0, R1]) First() R0 {
	return g.r0
}

// FirstAddr returns the address of the first stored resource.
func (g *Guard2[R0, R1]) FirstAddr() *R0 {
	return &g.r0
}
