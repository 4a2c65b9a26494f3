// Package guard provides scope-bound resource guards.
//
// A guard owns a deleter and zero or more resource values created
// elsewhere (file descriptors, handles, runtimes, locks). The deleter runs
// exactly once when the guard is closed, unless the guard was disarmed or
// the deleter already ran.
//
// # Arity
//
// Go has no variadic type parameters, so each resource count has its own
// type. The deleter receives the resources as separate arguments in the
// order they were stored:
//
//	Guard0                 func() error
//	Guard1[R]              func(R) error
//	Guard2[R0, R1]         func(R0, R1) error
//	Guard3[R0, R1, R2]     func(R0, R1, R2) error
//
// A deleter that does not match the resources does not compile.
//
// # Scope Exit
//
// Close is the scope-exit handler. Pair every constructor with a deferred
// Close so release happens on early returns and panics too:
//
//	f, err := os.Open(name)
//	if err != nil {
//	    return err
//	}
//	g := guard.New1((*os.File).Close, f)
//	defer g.Close()
//
// Deferred guards close in reverse construction order.
//
// For APIs that report failure through a sentinel value, NewChecked arms
// the guard only when the resource differs from the sentinel:
//
//	g := guard.NewChecked(unix.Close, fd, -1)
//	defer g.Close()
//
// # Arming
//
// A guard is either armed or disarmed:
//
//	Invoke(Once)   run the deleter if armed, then disarm
//	Invoke(Again)  run the deleter if armed, then stay armed
//	Reset(r...)    Invoke(Again), then store new resources
//	Release()      disarm without running, return the first resource
//	ReleaseAll()   disarm without running, return every resource
//	Move()         hand deleter, resources and arming to a new guard
//
// Invoke(Once) is idempotent, so calling it before the deferred Close is
// safe. If the deleter panics the guard is already disarmed and the panic
// reaches the caller.
//
// # Ownership
//
// Guards are handled by pointer and must not be copied; go vet reports
// copies. Move is the only transfer: the source is disarmed and its
// resources are zeroed.
//
// # Thread Safety
//
// A guard is not safe for concurrent use. Guards on different goroutines
// are independent.
package guard
