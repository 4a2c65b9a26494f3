// Package errors provides structured error types for release failures.
//
// Errors are categorized by Phase (which guard operation was running) and
// Kind (what went wrong). The Error type carries the guard's name, the
// offending value and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRelease, errors.KindDeleterFailed).
//		Guard("db-conn").
//		Cause(closeErr).
//		Detail("close after %d queries", n).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.DeleterFailed(errors.PhaseRelease, "db-conn", closeErr)
//	err := errors.InvalidHandle(errors.PhaseTable, h)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
