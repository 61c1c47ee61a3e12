// Package upstream classifies failures from the music and events providers.
package upstream

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
)

// Error classes. Classify wraps provider errors so callers can test them
// with errors.Is.
var (
	// ErrAuth means credentials were rejected or have expired.
	ErrAuth = errors.New("upstream authentication failed")

	// ErrUnavailable covers network failures, timeouts, rate limiting and
	// server errors.
	ErrUnavailable = errors.New("upstream unavailable")

	// ErrMalformed means the provider answered with a payload that could
	// not be decoded.
	ErrMalformed = errors.New("malformed upstream response")
)

// The provider SDKs expose these predicates on their error types.
type authError interface{ Auth() bool }
type malformedError interface{ Malformed() bool }

// Classify wraps err with the error class it belongs to. Errors that
// match no class, and nil, are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrAuth) || errors.Is(err, ErrUnavailable) || errors.Is(err, ErrMalformed) {
		return err
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: %w", ErrAuth, err)
	}

	var ae authError
	if errors.As(err, &ae) && ae.Auth() {
		return fmt.Errorf("%w: %w", ErrAuth, err)
	}

	var me malformedError
	if errors.As(err, &me) && me.Malformed() {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	// Cancellation is the caller's doing, not the provider's.
	if errors.Is(err, context.Canceled) {
		return err
	}

	// Everything else that came back from a provider call (status errors,
	// net errors, deadlines) means the provider is unavailable.
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
