package repository

import "errors"

var (
	// ErrNotFound is returned by every adapter when the keyed record is absent.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique key is already taken.
	ErrDuplicate = errors.New("duplicate key")
)
