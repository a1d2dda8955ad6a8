package services

import "errors"

// Error kinds surfaced to the handler layer. Domain-expected negative
// outcomes (wrong flag, invalid link) are terminal submission statuses,
// never errors.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrConflict        = errors.New("conflict")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrAccountDisabled = errors.New("account disabled")
	ErrRateLimited     = errors.New("rate limited")
)
