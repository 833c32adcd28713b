package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. This is the generic parent of the entity-specific
	// not-found errors.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a
	// duplicate of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation
	// before being stored, or references a row that does not exist.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction
	// fails to commit or an operation within it fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	ErrUserNotFound          = fmt.Errorf("%w: user", ErrNotFound)
	ErrBodyPartNotFound      = fmt.Errorf("%w: body part", ErrNotFound)
	ErrExerciseNotFound      = fmt.Errorf("%w: exercise", ErrNotFound)
	ErrWorkoutNotFound       = fmt.Errorf("%w: workout", ErrNotFound)
	ErrExerciseBlockNotFound = fmt.Errorf("%w: exercise block", ErrNotFound)
	ErrSetNotFound           = fmt.Errorf("%w: set", ErrNotFound)

	// Entity-specific "duplicate" errors

	ErrEmailExists         = fmt.Errorf("%w: email", ErrDuplicate)
	ErrUsernameExists      = fmt.Errorf("%w: username", ErrDuplicate)
	ErrBodyPartExists      = fmt.Errorf("%w: body part name", ErrDuplicate)
	ErrExerciseExists      = fmt.Errorf("%w: exercise name", ErrDuplicate)
	ErrWorkoutExists       = fmt.Errorf("%w: workout date", ErrDuplicate)
	ErrExerciseBlockExists = fmt.Errorf("%w: exercise block", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with
// additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "workout", "set")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity,
// operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
