package closers

import (
	"go.uber.org/zap"

	"github.com/wippyai/scoped/errors"
)

// Logged0 wraps d so that a failure is logged and a panic is recovered.
// Deleters run during scope teardown; a panic there would replace the
// error being unwound, so it is turned into a KindDeleterPanicked error.
func Logged0(log *zap.Logger, name string, d func() error) func() error {
	return func() error {
		return protect(log, name, d)
	}
}

// Logged1 is Logged0 for a single-resource deleter.
func Logged1[R any](log *zap.Logger, name string, d func(R) error) func(R) error {
	return func(r R) error {
		return protect(log, name, func() error { return d(r) })
	}
}

// Logged2 is Logged0 for a two-resource deleter.
func Logged2[R0, R1 any](log *zap.Logger, name string, d func(R0, R1) error) func(R0, R1) error {
	return func(r0 R0, r1 R1) error {
		return protect(log, name, func() error { return d(r0, r1) })
	}
}

// Logged3 is Logged0 for a three-resource deleter.
func Logged3[R0, R1, R2 any](log *zap.Logger, name string, d func(R0, R1, R2) error) func(R0, R1, R2) error {
	return func(r0 R0, r1 R1, r2 R2) error {
		return protect(log, name, func() error { return d(r0, r1, r2) })
	}
}

func protect(log *zap.Logger, name string, call func() error) (err error) {
	if log == nil {
		log = zap.NewNop()
	}
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("deleter panicked",
				zap.String("guard", name),
				zap.Any("panic", rec))
			err = errors.DeleterPanicked(errors.PhaseRelease, name, rec)
		}
	}()

	if cerr := call(); cerr != nil {
		log.Warn("deleter failed",
			zap.String("guard", name),
			zap.Error(cerr))
		return errors.DeleterFailed(errors.PhaseRelease, name, cerr)
	}
	return nil
}
