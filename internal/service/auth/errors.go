package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken is the uniform failure for any token that does not
	// verify: malformed structure, bad signature, or expiry. Callers are
	// deliberately given no way to distinguish the cause.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)
