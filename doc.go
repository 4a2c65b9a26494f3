// Package scoped provides scope-bound resource guards for Go.
//
// A guard owns resources created elsewhere together with the function that
// releases them, and runs that function exactly once when its scope ends,
// unless the guard was disarmed first. Guards never allocate resources and
// never share them.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	scoped/
//	├── guard/      Guard0..Guard3: arming state, Invoke, Reset, Release, Move
//	├── closers/    Deleter adapters: io.Closer, Close(ctx), raw fds, logging
//	├── resource/   Stack and Table for run-time numbers of guards
//	├── errors/     Structured error types for release failures
//	└── cmd/demo/   Walkthrough of the guard lifecycle
//
// # Quick Start
//
// Guard a file and release it on every exit path:
//
//	f, err := os.Open(name)
//	if err != nil {
//	    return err
//	}
//	g := guard.New1(closers.Close[*os.File], f)
//	defer g.Close()
//
//	data, err := io.ReadAll(g.First())
//
// Guard a descriptor from an API that returns -1 on failure:
//
//	fd, _ := unix.Open(path, unix.O_RDONLY, 0)
//	g := guard.NewChecked(closers.FD, fd, closers.InvalidFD)
//	defer g.Close()
//
// Release several resources with one deleter, arguments in order:
//
//	g := guard.New2(writeThenClose, fd, "bye\n")
//	defer g.Close() // writeThenClose(fd, "bye\n")
//
// # Deleter Failures
//
// Deleters return an error, which Close passes back. A deleter that panics
// leaves its guard disarmed and the panic propagates. Deleters that run
// during teardown should not panic; wrap them with closers.Logged0/1/2/3 to
// log failures and turn panics into errors.
//
// # Thread Safety
//
// Guards and resource.Stack are NOT thread-safe and should be used by a
// single goroutine. resource.Table is safe for concurrent use.
package scoped
