package domain

import "errors"

// Error taxonomy shared by repositories, services and the HTTP edge. Callers
// classify with errors.Is; anything outside these three is an internal error.
var (
	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates missing or malformed input.
	ErrValidation = errors.New("invalid input")
	// ErrConflict indicates the operation collides with existing state,
	// such as a duplicate signup email or a duplicate follow edge.
	ErrConflict = errors.New("conflict")
)
