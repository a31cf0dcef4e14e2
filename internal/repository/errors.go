package repository

import "errors"

var (
	// ErrNotFound is returned when an id or username keyed lookup misses.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a uniqueness constraint.
	ErrDuplicate = errors.New("record already exists")
)
