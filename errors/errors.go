package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which guard operation produced the error
type Phase string

const (
	PhaseConstruct Phase = "construct" // guard construction
	PhaseInvoke    Phase = "invoke"    // manual trigger
	PhaseReset     Phase = "reset"     // flush before replacing resources
	PhaseRelease   Phase = "release"   // scope exit
	PhaseTable     Phase = "table"     // guard table operations
)

// Kind categorizes the error
type Kind string

const (
	KindDeleterFailed   Kind = "deleter_failed"
	KindDeleterPanicked Kind = "deleter_panicked"
	KindInvalidHandle   Kind = "invalid_handle"
	KindClosed          Kind = "closed"
	KindNilDeleter      Kind = "nil_deleter"
)

// Error is the structured error type used by the guard packages
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Guard  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Guard != "" {
		b.WriteString(" in ")
		b.WriteString(e.Guard)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Guard sets the name of the guard involved
func (b *Builder) Guard(name string) *Builder {
	b.err.Guard = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// DeleterFailed wraps an error returned by a deleter
func DeleterFailed(phase Phase, guard string, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindDeleterFailed,
		Guard: guard,
		Cause: cause,
	}
}

// DeleterPanicked converts a recovered panic value into an error
func DeleterPanicked(phase Phase, guard string, recovered any) *Error {
	e := &Error{
		Phase:  phase,
		Kind:   KindDeleterPanicked,
		Guard:  guard,
		Value:  recovered,
		Detail: fmt.Sprintf("panic: %v", recovered),
	}
	if err, ok := recovered.(error); ok {
		e.Cause = err
	}
	return e
}

// InvalidHandle creates an error for a handle not present in a table
func InvalidHandle(phase Phase, handle uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidHandle,
		Value:  handle,
		Detail: fmt.Sprintf("handle %d not found", handle),
	}
}

// Closed creates an error for operations on a closed table or stack
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// NilDeleter creates an error for a guard built without a deleter
func NilDeleter(guard string) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindNilDeleter,
		Guard:  guard,
		Detail: "deleter is nil",
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
