package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing entity.
	ErrNotFound = errors.New("not found")
	// ErrInvalidKind signals an unknown entity kind or one that does not support the operation.
	ErrInvalidKind = errors.New("invalid kind")
	// ErrInvalidEntity signals an entity that failed validation.
	ErrInvalidEntity = errors.New("invalid entity")
)

// EntityError wraps ErrInvalidEntity with the offending entity ID and reason.
type EntityError struct {
	ID     string
	Reason string
}

func (e *EntityError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidEntity.Error(), e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrInvalidEntity.Error(), e.ID, e.Reason)
}

func (e *EntityError) Unwrap() error { return ErrInvalidEntity }

// NewEntityError creates an invalid entity error.
func NewEntityError(id, reason string) error {
	return &EntityError{ID: id, Reason: reason}
}
