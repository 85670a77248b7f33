// Package apperror defines the typed errors every handler forwards to the
// terminal responder. Handlers never write error bodies themselves; they
// return or attach one of these and the responder middleware renders it.
package apperror

import (
	"errors"
	"net/http"
)

// FieldError describes a single input-validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries an HTTP status, a client-safe message, and optionally a list
// of per-field validation failures. Err, when set, is the internal cause and
// is only ever logged, never serialized.
type Error struct {
	Status  int
	Message string
	Fields  []FieldError
	Err     error
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

// Validation builds a 400 carrying per-field failures.
func Validation(fields []FieldError) *Error {
	return &Error{Status: http.StatusBadRequest, Message: "Validation failed", Fields: fields}
}

// BadRequest builds a 400 with a single message.
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Unauthorized builds a 401.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Forbidden builds a 403.
func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

// NotFound builds a 404.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Internal wraps an unexpected failure. The cause is kept for server-side
// logging; the client only ever sees the generic message.
func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal Server Error", Err: err}
}

// From coerces any error into an *Error, wrapping unknown types as Internal
// so no internal detail leaks to the client.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Status == 0 {
			appErr.Status = http.StatusInternalServerError
		}
		return appErr
	}
	return Internal(err)
}
