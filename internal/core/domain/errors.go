package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrAuthInProgress     = errors.New("authentication already in progress")
	ErrPersistence        = errors.New("session persistence failed")
	ErrPersistenceParse   = errors.New("stored profile is not valid JSON")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account already exists")
	ErrNoSession          = errors.New("authentication response carried no session")
)

// ValidationError reports input rejected before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError from a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// RequestError is a non-2xx response from the upstream API.
// Message is the response body text, or a generic fallback when it was empty.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// NewRequestError builds a RequestError, falling back to a generic message
// when body is empty.
func NewRequestError(status int, body string) *RequestError {
	if body == "" {
		body = fmt.Sprintf("Request failed with status %d", status)
	}
	return &RequestError{Status: status, Message: body}
}

// StateError signals a wiring bug, such as reading the session from a handler
// that is not mounted behind the route guard. It is raised with panic.
type StateError struct {
	Op string
}

func NewStateError(op string) *StateError {
	return &StateError{Op: op}
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: no session in request scope; handler is not behind the route guard", e.Op)
}
