package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed input: bad quantities, empty selections, references
	// to menu items or orders that do not exist.
	ErrValidation = errors.New("validation error")
	// ErrConflict marks a request that would break a domain rule.
	ErrConflict = errors.New("conflict")
	// ErrNotFound marks an addressed entity that does not exist.
	ErrNotFound = errors.New("not found")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
