package service

import (
	"errors"
	"fmt"

	"notekeeper/internal/notes"
)

var (
	// ErrInvalidInput matches every *ValidationError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a note or section does not exist.
	ErrNotFound = notes.ErrNotFound
	// ErrInvalidSection is returned when an operation needs an active section.
	ErrInvalidSection = notes.ErrInvalidSection
	// ErrPersistence is returned when durable storage failed; the operation had no effect.
	ErrPersistence = notes.ErrPersistence
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match validation failures.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
