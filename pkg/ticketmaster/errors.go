package ticketmaster

import (
	"fmt"
	"net/http"
)

// Error represents a non-2xx response from the Discovery API.
type Error struct {
	StatusCode int    // HTTP status code
	Code       string // Fault or error code, e.g. "oauth.v2.InvalidApiKey"
	Message    string // Fault string or error detail
}

// Error returns the error message.
func (e *Error) Error() string {
	msg := fmt.Sprintf("ticketmaster: status %d", e.StatusCode)
	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
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

// Temporary returns true for quota violations and server errors.
//
// The Discovery API allows 5 requests per second and 5000 per day per key.
func (e *Error) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// DecodeError is returned when a 2xx response body is not the expected JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ticketmaster: malformed response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Malformed always returns true.
func (e *DecodeError) Malformed() bool {
	return true
}
