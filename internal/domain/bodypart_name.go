package domain

import (
	"errors"
	"strings"
)

// maxBodyPartNameLength caps body part names at 50 characters.
const maxBodyPartNameLength = 50

// Common validation errors for BodyPartName
var (
	ErrEmptyBodyPartName   = errors.New("body part name cannot be empty")
	ErrBodyPartNameTooLong = errors.New("body part name cannot exceed 50 characters")
)

// BodyPartName is a validated body part name value object.
type BodyPartName struct {
	value string
}

// NewBodyPartName creates a new BodyPartName from a raw string.
// Empty or whitespace-only values are rejected, as are values whose
// trimmed length exceeds 50 characters.
func NewBodyPartName(raw string) (BodyPartName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return BodyPartName{}, ErrEmptyBodyPartName
	}
	if len(trimmed) > maxBodyPartNameLength {
		return BodyPartName{}, ErrBodyPartNameTooLong
	}

	return BodyPartName{value: raw}, nil
}

// String returns the underlying name.
func (n BodyPartName) String() string {
	return n.value
}

// Equals reports whether two names hold the same value.
func (n BodyPartName) Equals(other BodyPartName) bool {
	return n.value == other.value
}
