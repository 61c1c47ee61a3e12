package songkick

import (
	"fmt"
	"net/http"
)

// Error represents an error response from the Songkick API. Songkick
// reports some errors with a 2xx status and resultsPage.status "error".
type Error struct {
	StatusCode int    // HTTP status code
	Message    string // resultsPage.error.message, if present
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("songkick: status %d", e.StatusCode)
	}
	return fmt.Sprintf("songkick: status %d: %s", e.StatusCode, e.Message)
}

// Is reports whether target is an *Error with the same status code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// Auth returns true if the API key was rejected.
func (e *Error) Auth() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// Temporary returns true for rate limiting and server errors.
func (e *Error) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// DecodeError is returned when a response body is not the expected JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("songkick: malformed response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Malformed always returns true.
func (e *DecodeError) Malformed() bool {
	return true
}
