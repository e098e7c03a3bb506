package serrors

import (
	"errors"
	"fmt"
)

// Error attaches a Kind and an optional message to an optional cause.
// errors.Is and errors.As see through it to both the kind and the cause.
type Error struct {
	kind  Kind
	cause error
	msg   string
}

// With returns an error of kind k with a formatted message.
func With(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap returns an error of kind k wrapping err.
func Wrap(k Kind, err error, format string, args ...any) *Error {
	return &Error{kind: k, cause: err, msg: fmt.Sprintf(format, args...)}
}

func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.msg != "" && e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	case e.kind != nil:
		return e.kind.Error()
	}

	return "unknown error"
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) || (e.cause != nil && errors.Is(e.cause, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) || (e.cause != nil && errors.As(e.cause, target))
}

func (e *Error) Kind() Kind      { return e.kind }
func (e *Error) Message() string { return e.msg }
func (e *Error) Cause() error    { return e.cause }
