// Package serrors carries semantic error kinds through the service layers so
// the API can render them without knowing where they came from.
package serrors

import (
	"errors"
	"net/http"
)

// Kind is a semantic error category. Every kind knows the HTTP status it is
// rendered with and the message shown when an error carries no message of
// its own.
type Kind interface {
	error
	Status() int
	DefaultMessage() string
}

type kind struct {
	name   string
	status int
	msg    string
}

func (k *kind) Error() string          { return k.name }
func (k *kind) Status() int            { return k.status }
func (k *kind) DefaultMessage() string { return k.msg }

// NewKind registers a new kind. Kinds are compared by identity.
func NewKind(name string, status int, defaultMessage string) Kind {
	return &kind{name: name, status: status, msg: defaultMessage}
}

var (
	ErrNotFound     = NewKind("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrUnauthorized = NewKind("UNAUTHORIZED", http.StatusUnauthorized,
		"authentication credentials were not provided or are invalid")
	ErrForbidden = NewKind("FORBIDDEN", http.StatusForbidden,
		"you do not have permission to perform this action")
	ErrBadRequest = NewKind("BAD_REQUEST", http.StatusBadRequest, "invalid request")
	// ErrConflict is used for duplicate api key names and similar state clashes.
	ErrConflict    = NewKind("CONFLICT", http.StatusConflict, "conflict")
	ErrInternal    = NewKind("INTERNAL", http.StatusInternalServerError, "internal error")
	ErrTimeout     = NewKind("TIMEOUT", http.StatusGatewayTimeout, "request timed out")
	ErrUnavailable = NewKind("UNAVAILABLE", http.StatusServiceUnavailable, "service unavailable")
	ErrRateLimited = NewKind("RATE_LIMITED", http.StatusTooManyRequests, "too many requests")
)

// KindOf returns the kind carried by err, or ErrInternal. A bare kind is its
// own kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e.kind != nil {
		return e.kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// HTTPStatus returns the status err should be answered with.
func HTTPStatus(err error) int {
	return KindOf(err).Status()
}

// PublicMessage returns the message that may be shown to a client. Internal
// errors never leak their cause.
func PublicMessage(err error) string {
	k := KindOf(err)
	if k == ErrInternal {
		return k.DefaultMessage()
	}
	var e *Error
	if errors.As(err, &e) && e.msg != "" {
		return e.msg
	}

	return k.DefaultMessage()
}
