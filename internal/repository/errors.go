package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEmail is returned when the users.email unique index rejects a write.
	ErrDuplicateEmail = errors.New("repository: email already exists")
	// ErrDatabase wraps every other storage failure.
	ErrDatabase = errors.New("database error")
)

func dbError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDatabase, op, err)
}
