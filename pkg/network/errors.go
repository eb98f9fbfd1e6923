package network

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrDuplicateID = errors.New("component id already exists")
	ErrUnknownID   = errors.New("component id not found")
	ErrSelfLoop    = errors.New("self-loop connection rejected")
)

// NetworkError provides structured error information for graph operations.
type NetworkError struct {
	Op     string // Operation that failed (e.g., "AddComponent", "AddConnection")
	Entity string // Entity kind (e.g., "component", "connection")
	ID     string // Entity id (if applicable)
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *NetworkError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// DuplicateIDError creates an error for an id collision on create.
func DuplicateIDError(op, id string) error {
	return &NetworkError{Op: op, Entity: "component", ID: id, Cause: ErrDuplicateID}
}

// UnknownIDError creates an error for a reference to a missing component.
func UnknownIDError(op, id string) error {
	return &NetworkError{Op: op, Entity: "component", ID: id, Cause: ErrUnknownID}
}

// IsNotFound returns true if the error is an unknown-id error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownID)
}
