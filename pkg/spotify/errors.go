package spotify

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a non-2xx response from the Spotify Web API.
type Error struct {
	StatusCode int    // HTTP status code
	Message    string // Error message from Spotify, if the body carried one
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("spotify: status %d", e.StatusCode)
	}
	return fmt.Sprintf("spotify: status %d: %s", e.StatusCode, e.Message)
}

// Is reports whether target is an *Error with the same status code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// Auth returns true if the access token was missing, expired or lacks
// the required scope.
func (e *Error) Auth() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// Temporary returns true for rate limiting and server-side failures.
//
// Spotify answers 429 with a Retry-After header when the app exceeds
// its rolling rate limit.
func (e *Error) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// DecodeError is returned when a 2xx response body is not the expected JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("spotify: malformed response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Malformed always returns true.
func (e *DecodeError) Malformed() bool {
	return true
}

// Predefined errors for common cases.
var (
	// ErrNoHTTPClient is returned by NewClient when no authorizing
	// HTTP client is configured.
	ErrNoHTTPClient = errors.New("spotify: HTTPClient is required")

	// ErrInvalidLimit is returned when a page size is outside 1..MaxPageSize.
	ErrInvalidLimit = fmt.Errorf("spotify: limit must be between 1 and %d", MaxPageSize)
)
