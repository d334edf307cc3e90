package api

import (
	"errors"
	"fmt"
)

// Client-observed error taxonomy for the remote API
var (
	// ErrUnauthorized is returned when the credential is missing, expired, or
	// rejected by the server. The caller should prompt for re-authentication
	// rather than showing a generic error.
	ErrUnauthorized = errors.New("authentication required")

	// ErrNotFound is returned when the requested entity does not exist or is
	// not visible to the caller.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when the server rejected the submitted fields,
	// or when a response body does not match the expected shape.
	ErrValidation = errors.New("validation failed")

	// ErrNetwork is returned when the request could not complete at all
	// (no response received).
	ErrNetwork = errors.New("network request failed")

	// ErrServer is returned for server-side failures (5xx) and for responses
	// reporting success=false without a more specific status.
	ErrServer = errors.New("server error")
)

// RequestError wraps API failures with the operation that failed and the
// server-provided message when one was available.
type RequestError struct {
	// Op is the operation that failed (e.g., "orders.Get").
	Op string

	// Err is the taxonomy error this failure classifies as.
	Err error

	// Message is the human-readable message to surface. It carries the
	// server's message verbatim when the response included one, otherwise a
	// generic fallback for the error kind.
	Message string

	// StatusCode is the HTTP status of the response, or 0 when no response
	// was received.
	StatusCode int
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api: %s failed (status %d): %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying taxonomy error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *RequestError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// newRequestError builds a RequestError, substituting a per-kind fallback
// message when the server did not provide one.
func newRequestError(op string, kind error, message string, status int) *RequestError {
	if message == "" {
		message = fallbackMessage(kind)
	}
	return &RequestError{Op: op, Err: kind, Message: message, StatusCode: status}
}

func fallbackMessage(kind error) string {
	switch {
	case errors.Is(kind, ErrUnauthorized):
		return "your session is missing or expired, please log in again"
	case errors.Is(kind, ErrNotFound):
		return "the requested record was not found"
	case errors.Is(kind, ErrValidation):
		return "the server rejected the submitted data"
	case errors.Is(kind, ErrNetwork):
		return "could not reach the server, check your connection"
	default:
		return "the server could not complete the request"
	}
}

// classifyStatus maps an HTTP status code onto the taxonomy.
func classifyStatus(status int) error {
	switch {
	case status == 401 || status == 403:
		return ErrUnauthorized
	case status == 404:
		return ErrNotFound
	case status >= 400 && status < 500:
		return ErrValidation
	default:
		return ErrServer
	}
}
