package repository

import "errors"

// Errors shared by all repository implementations. Services match on
// these instead of driver-specific errors.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry indicates a write violated a unique constraint.
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
	// ErrCorruptData indicates a stored document failed to decode into
	// its typed entity. Never silently coerced.
	ErrCorruptData = errors.New("repository: corrupt stored data")
)
