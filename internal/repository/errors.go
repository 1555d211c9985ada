package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the query.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a storage uniqueness rule rejects a write,
	// regardless of the underlying driver's error code.
	ErrConflict = errors.New("unique constraint violation")
)
