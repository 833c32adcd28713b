package domain

import (
	"errors"
	"strings"
)

// maxExerciseNameLength caps exercise names at 100 characters.
const maxExerciseNameLength = 100

// Common validation errors for ExerciseName
var (
	ErrEmptyExerciseName   = errors.New("exercise name cannot be empty")
	ErrExerciseNameTooLong = errors.New("exercise name cannot exceed 100 characters")
)

// ExerciseName is a validated exercise name value object.
type ExerciseName struct {
	value string
}

// NewExerciseName creates a new ExerciseName from a raw string.
// Empty or whitespace-only values are rejected, as are values whose
// trimmed length exceeds 100 characters.
func NewExerciseName(raw string) (ExerciseName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ExerciseName{}, ErrEmptyExerciseName
	}
	if len(trimmed) > maxExerciseNameLength {
		return ExerciseName{}, ErrExerciseNameTooLong
	}

	return ExerciseName{value: raw}, nil
}

// String returns the underlying name.
func (n ExerciseName) String() string {
	return n.value
}

// Equals reports whether two names hold the same value.
func (n ExerciseName) Equals(other ExerciseName) bool {
	return n.value == other.value
}
