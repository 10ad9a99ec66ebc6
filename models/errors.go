package models

import "errors"

var (
	// ErrNotFound is returned when no record matches the given key.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicated is returned when an insert or rename collides with a
	// unique index. It is the authoritative rejection for the
	// check-then-act window between validation and persistence.
	ErrDuplicated = errors.New("duplicate record")
)
