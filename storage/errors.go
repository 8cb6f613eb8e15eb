package storage

import (
	"errors"
)

var (
	// ErrNotFound is returned when a retrieved key does not exist in the
	// database. Implementations of all storage interfaces in this package
	// return ErrNotFound for missing keys, never the backend's own sentinel.
	ErrNotFound = errors.New("key not found")

	// ErrAlreadyExists is returned when an insert targets an existing key.
	// The stores never overwrite: entities are immutable once persisted.
	ErrAlreadyExists = errors.New("key already exists")

	// ErrDataMismatch is returned when an insert targets an existing key
	// with different data, which indicates state corruption or a caller bug.
	ErrDataMismatch = errors.New("data for key is different")
)
