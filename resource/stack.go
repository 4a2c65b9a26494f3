package resource

import (
	stderrors "errors"

	"go.uber.org/multierr"

	"github.com/wippyai/scoped/errors"
)

// Stack releases a run-time number of guards in reverse push order.
// The zero value is ready to use. A Stack is not safe for concurrent use.
type Stack struct {
	frames []frame
}

type frame struct {
	guard Guard
	name  string
}

// Push adds g to the stack and returns it, so construction and
// registration read as one step:
//
//	f := resource.Push(&s, name, guard.New1((*os.File).Close, file))
func Push[G Guard](s *Stack, name string, g G) G {
	s.frames = append(s.frames, frame{guard: g, name: name})
	return g
}

// Len returns the number of guards on the stack.
func (s *Stack) Len() int {
	return len(s.frames)
}

// Close releases every guard, last pushed first, and empties the stack.
// All guards are closed even when some fail or panic, as with deferred
// calls; the errors are combined.
func (s *Stack) Close() (err error) {
	if len(s.frames) == 0 {
		return nil
	}
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]

	defer func() {
		err = multierr.Append(err, s.Close())
	}()
	return wrapRelease(errors.PhaseRelease, f.name, f.guard.Close())
}

// Release disarms every guard and empties the stack. The resources stay
// open and belong to whoever holds the guards.
func (s *Stack) Release() {
	for _, f := range s.frames {
		f.guard.Disarm()
	}
	s.frames = nil
}

// wrapRelease annotates a deleter error with the guard's name unless it
// is already structured.
func wrapRelease(phase errors.Phase, name string, err error) error {
	if err == nil {
		return nil
	}
	var gerr *errors.Error
	if stderrors.As(err, &gerr) {
		return err
	}
	return errors.DeleterFailed(phase, name, err)
}
