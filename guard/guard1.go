package guard

// Guard1 guards a single resource.
type Guard1[R any] struct {
	state
	deleter func(R) error
	r       R
}

// New1 returns an armed guard that calls deleter(r) when closed.
func New1[R any](deleter func(R) error, r R) *Guard1[R] {
	return newGuard1(deleter, r, true)
}

// NewChecked returns a guard that is armed only if r != invalid.
// Use it for APIs that signal failure with a sentinel such as -1:
//
//	g := guard.NewChecked(unix.Close, fd, -1)
//	defer g.Close()
func NewChecked[R comparable](deleter func(R) error, r, invalid R) *Guard1[R] {
	return newGuard1(deleter, r, r != invalid)
}

func newGuard1[R any](deleter func(R) error, r R, armed bool) *Guard1[R] {
	mustDeleter(deleter != nil, "New1")
	g := &Guard1[R]{deleter: deleter, r: r}
	g.kind = "Guard1"
	g.armed = armed
	return g
}

// Invoke calls the deleter if the guard is armed. With Once the guard is
// disarmed afterwards, with Again it stays armed.
func (g *Guard1[R]) Invoke(mode Mode) *Guard1[R] {
	g.fire(mode, g.call)
	return g
}

// Close runs the deleter if armed and disarms the guard. It returns the
// deleter's error, or nil if nothing ran.
func (g *Guard1[R]) Close() error {
	return g.close(g.call)
}

func (g *Guard1[R]) call() error {
	return g.deleter(g.r)
}

// Reset releases the current resource if armed and replaces it with r.
// The guard is armed for r afterwards.
func (g *Guard1[R]) Reset(r R) *Guard1[R] {
	g.Invoke(Again)
	g.r = r
	return g
}

// Release disarms the guard and returns the resource. The caller takes
// over responsibility for releasing it.
func (g *Guard1[R]) Release() R {
	g.disarm()
	return g.r
}

// ReleaseAll is Release for a single resource.
func (g *Guard1[R]) ReleaseAll() R {
	return g.Release()
}

// Move returns a new guard owning the deleter, the resource and the arming
// of g. g is left disarmed with a zero resource.
func (g *Guard1[R]) Move() *Guard1[R] {
	m := &Guard1[R]{deleter: g.deleter, r: g.r}
	m.take(&g.state)
	var zero R
	g.r = zero
	return m
}

// Deleter returns the guard's deleter.
func (g *Guard1[R]) Deleter() func(R) error {
	return g.deleter
}

// Get0 returns the resource.
func (g *Guard1[R]) Get0() R {
	return g.r
}

// Ref0 returns a pointer to the stored resource. Writes through it do not
// affect arming.
func (g *Guard1[R]) Ref0() *R {
	return &g.r
}

// First returns the resource.
func (g *Guard1[R]) First() R {
	return g.r
}

// FirstAddr returns the address of the stored resource, for APIs that
// fill a resource in through an out-parameter.
func (g *Guard1[R]) FirstAddr() *R {
	return &g.r
}

// Deref returns the value a pointer resource points to. It panics if the
// resource is nil.
func Deref[T any](g *Guard1[*T]) T {
	return *g.r
}
