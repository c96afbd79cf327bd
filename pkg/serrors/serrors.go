// Package serrors defines the semantic error kinds used across the XDS layer.
// Callers match kinds with errors.Is while the concrete cause stays reachable
// through the normal unwrap chain.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by every semantic error kind created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel).
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrPrecondition marks a caller bug: a parameter that the registry standard
	// makes mandatory (a scheme, a name) was not supplied.
	ErrPrecondition = NewKind("PRECONDITION")
	// ErrInvalidArgument indicates a value of the wrong type or shape was passed in.
	ErrInvalidArgument = NewKind("INVALID_ARGUMENT")
	// ErrMalformed indicates a wire document that could not be parsed.
	ErrMalformed = NewKind("MALFORMED")
	// ErrUnsupported indicates an unknown wire version or transaction kind.
	ErrUnsupported = NewKind("UNSUPPORTED")
	// ErrNotFound indicates a requested input (file, object) does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates a missing or invalid bearer token.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrInternal indicates an unexpected failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional message.
//
// Error string formatting:
//   - msg and err set: "<msg>: <err>"
//   - only msg: "<msg>"
//   - only err: "<err>"
//   - neither: the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind around cause err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Require panics with an ErrPrecondition error when cond is false. It is
// reserved for programmer errors; recoverable conditions return errors.
func Require(cond bool, msgFmt string, args ...any) {
	if !cond {
		panic(With(ErrPrecondition, msgFmt, args...))
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches either the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches either the kind sentinel or the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }
