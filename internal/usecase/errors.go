package usecase

import "errors"

// Sentinel errors returned by services. The HTTP layer maps each one to a
// status code, so wrap them with %w rather than replacing them.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrRunInProgress means another pipeline run holds the lock.
	ErrRunInProgress = errors.New("pipeline run in progress")
)
