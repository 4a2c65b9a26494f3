package guard

import (
	"go.uber.org/zap"

	"github.com/wippyai/scoped/errors"
)

// Mode selects whether a guard stays armed after Invoke.
type Mode uint8

const (
	// Once disarms the guard after the deleter runs.
	Once Mode = iota
	// Again leaves the guard armed for the next trigger.
	Again
)

func (m Mode) String() string {
	switch m {
	case Once:
		return "once"
	case Again:
		return "again"
	default:
		return "unknown"
	}
}

// noCopy may be embedded into structs which must not be copied
// after first use. See go vet -copylocks.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// state is the arming state shared by every guard arity.
type state struct {
	noCopy noCopy
	err    error
	kind   string
	armed  bool
}

// Armed reports whether the deleter will run on the next trigger.
func (s *state) Armed() bool {
	return s.armed
}

// Err returns the error of the most recent deleter run.
func (s *state) Err() error {
	return s.err
}

// fire runs call if armed and reports whether it ran. armed and err are
// cleared before the call so a panicking deleter cannot run twice and
// leaves no stale error behind.
func (s *state) fire(mode Mode, call func() error) bool {
	ran := false
	if s.armed {
		s.armed = false
		s.err = nil
		s.err = call()
		ran = true
		if ce := Logger().Check(zap.DebugLevel, "guard released"); ce != nil {
			ce.Write(
				zap.String("guard", s.kind),
				zap.Stringer("mode", mode),
				zap.Error(s.err))
		}
	}
	s.armed = mode == Again
	return ran
}

// close is the scope-exit path shared by every Close method.
func (s *state) close(call func() error) error {
	if !s.fire(Once, call) {
		return nil
	}
	if s.err != nil {
		Logger().Warn("guard deleter failed",
			zap.String("guard", s.kind),
			zap.Error(s.err))
	}
	return s.err
}

// Disarm clears the arming without running the deleter. It is Release
// for callers that do not need the resources back.
func (s *state) Disarm() {
	s.disarm()
}

func (s *state) disarm() {
	if s.armed {
		Logger().Debug("guard disarmed", zap.String("guard", s.kind))
	}
	s.armed = false
}

// take moves the arming of src into s and disarms src.
func (s *state) take(src *state) {
	s.kind = src.kind
	s.armed = src.armed
	s.err = src.err
	src.armed = false
	Logger().Debug("guard moved",
		zap.String("guard", s.kind),
		zap.Bool("armed", s.armed))
}

func (s *state) String() string {
	if s.armed {
		return s.kind + "(armed)"
	}
	return s.kind + "(disarmed)"
}

func mustDeleter(ok bool, ctor string) {
	if !ok {
		panic(errors.NilDeleter(ctor))
	}
}
