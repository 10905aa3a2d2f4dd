package notes

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an id has no matching active record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidSection is returned when an operation needs an active section
	// and the referenced one is missing or in the trash.
	ErrInvalidSection = errors.New("invalid section")
	// ErrInvalidSortOption is returned for sort values outside the known set.
	ErrInvalidSortOption = errors.New("invalid sort option")
	// ErrPersistence matches every *PersistenceError.
	ErrPersistence = errors.New("persistence failure")
)

// PersistenceError reports a failed load or save of durable state.
// The operation that produced it left in-memory state unchanged.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: persistence failure: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrPersistence) true for any PersistenceError.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func noteNotFound(id string) error {
	return fmt.Errorf("note %q: %w", id, ErrNotFound)
}

func sectionNotFound(id string) error {
	return fmt.Errorf("section %q: %w", id, ErrNotFound)
}

func invalidSection(id string) error {
	return fmt.Errorf("section %q: %w", id, ErrInvalidSection)
}
