package domain

import "errors"

// Error taxonomy. Handlers map these to HTTP statuses:
// ErrInvalidRequest -> 400, ErrNotFound -> 404, anything else -> 500.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
)
