// Package apperror provides the structured error taxonomy used across the
// service. Every failure surfaced at the HTTP boundary is an *Error carrying
// a machine-readable kind, a client-safe message, and an HTTP status.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a machine-readable error category.
type Kind string

const (
	KindInput          Kind = "input"
	KindConflict       Kind = "conflict"
	KindNotFound       Kind = "not_found"
	KindBusinessRule   Kind = "business_rule"
	KindAuthentication Kind = "authentication"
	KindServer         Kind = "server"
)

// Error is the single tagged error variant the whole service reports with.
type Error struct {
	Kind    Kind
	Message string
	Status  int

	// cause is logged server-side, never rendered to the client.
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the internal cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Is matches two *Error values by kind, so sentinel-style comparisons work:
// errors.Is(err, apperror.NotFound("")) is true for any not_found error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// WithCause attaches an internal cause for logging and unwrapping.
func (e *Error) WithCause(cause error) *Error {
	clone := *e
	clone.cause = cause
	return &clone
}

func Input(msg string) *Error {
	return &Error{Kind: KindInput, Message: msg, Status: http.StatusBadRequest}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg, Status: http.StatusConflict}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg, Status: http.StatusNotFound}
}

func BusinessRule(msg string) *Error {
	return &Error{Kind: KindBusinessRule, Message: msg, Status: http.StatusBadRequest}
}

func Authentication(msg string) *Error {
	return &Error{Kind: KindAuthentication, Message: msg, Status: http.StatusUnauthorized}
}

func Server(msg string) *Error {
	return &Error{Kind: KindServer, Message: msg, Status: http.StatusInternalServerError}
}

// From normalizes an arbitrary error into an *Error. Errors already carrying
// a kind pass through unchanged; anything else becomes a generic server error
// with the original preserved as the cause.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Server("internal server error").WithCause(err)
}
