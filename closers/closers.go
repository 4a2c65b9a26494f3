// Package closers adapts common cleanup shapes into guard deleters.
//
// Most Go resources already carry their cleanup as a method. The helpers
// here turn those methods, and plain functions without an error result,
// into the func(...) error deleters the guard package expects:
//
//	f, err := os.Create(path)
//	...
//	g := guard.New1(closers.Close[*os.File], f)
//	defer g.Close()
//
//	rt := wazero.NewRuntime(ctx)
//	g := guard.New1(closers.Context[wazero.Runtime](ctx), rt)
//	defer g.Close()
package closers

import (
	"context"
	"io"
)

// Close is a deleter for any io.Closer.
func Close[R io.Closer](r R) error {
	return r.Close()
}

// ContextCloser is implemented by resources whose Close takes a context,
// such as wazero runtimes, compiled modules and module instances.
type ContextCloser interface {
	Close(ctx context.Context) error
}

// Context returns a deleter that closes the resource with ctx.
func Context[R ContextCloser](ctx context.Context) func(R) error {
	return func(r R) error {
		return r.Close(ctx)
	}
}

// NoError0 adapts a function without an error result.
func NoError0(f func()) func() error {
	return func() error {
		f()
		return nil
	}
}

// NoError1 adapts a one-argument function without an error result.
func NoError1[R any](f func(R)) func(R) error {
	return func(r R) error {
		f(r)
		return nil
	}
}

// NoError2 adapts a two-argument function without an error result.
func NoError2[R0, R1 any](f func(R0, R1)) func(R0, R1) error {
	return func(r0 R0, r1 R1) error {
		f(r0, r1)
		return nil
	}
}

// NoError3 adapts a three-argument function without an error result.
func NoError3[R0, R1, R2 any](f func(R0, R1, R2)) func(R0, R1, R2) error {
	return func(r0 R0, r1 R1, r2 R2) error {
		f(r0, r1, r2)
		return nil
	}
}
