// Package apperr defines the error kinds the service layer reports and the
// HTTP status each kind maps to at the boundary.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindForbidden
	KindConflict
	KindStore
)

// Error is a typed failure result. Services return it for every contract
// violation; handlers map Kind to a transport status.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, only set for KindStore
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Store wraps an unexpected persistence failure. The cause is kept for
// logging; callers must not leak it to clients.
func Store(err error) *Error {
	return &Error{Kind: KindStore, Message: "Server error", Err: err}
}

// HTTPStatus maps an error to the status the original API contract uses.
// Forbidden intentionally maps to 401 ("Not authorized") and Conflict to 400,
// matching the published endpoint table.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message. Store errors always read as a
// generic server error regardless of the wrapped cause.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindStore {
		return e.Message
	}
	return "Server error"
}
