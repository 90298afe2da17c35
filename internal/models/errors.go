package models

import "errors"

// Sentinel errors for the four failure classes. Callers match with errors.Is;
// wrapping sites add the operation detail.
var (
	// ErrValidation marks malformed input (probability, confidence, topic key).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an unknown topic key.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a topic key that already exists on create.
	ErrConflict = errors.New("already exists")

	// ErrStore marks a persistence read/write failure.
	ErrStore = errors.New("store failure")
)
