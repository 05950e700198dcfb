package domain

import "fmt"

// NotFoundError signals that no row exists for the given identifier.
type NotFoundError struct {
	Entity string
	Key    string
}

func NewNotFoundError(entity, key string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with identifier %q was not found", e.Entity, e.Key)
}

// ValidationError signals malformed input detected before any storage call.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError signals a unique-constraint violation. Constraint carries the
// name of the database constraint that fired.
type ConflictError struct {
	Message    string
	Hint       string
	Constraint string
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string { return e.Message }

// ForeignKeyError signals that a referenced parent row does not exist.
// Constraint carries the name of the database constraint that fired.
type ForeignKeyError struct {
	Message    string
	Hint       string
	Constraint string
}

func (e *ForeignKeyError) Error() string { return e.Message }
