package domain

import (
	"errors"
	"strings"
)

// Common validation errors for Email
var (
	ErrEmptyEmail   = errors.New("email cannot be empty")
	ErrInvalidEmail = errors.New("invalid email format")
)

// Email is a validated email address value object.
// It is immutable and compared by value via Equals.
type Email struct {
	value string
}

// NewEmail creates a new Email from a raw string.
// The address must contain exactly one '@' with non-empty
// local and domain parts.
// Returns an error if validation fails.
func NewEmail(raw string) (Email, error) {
	if raw == "" {
		return Email{}, ErrEmptyEmail
	}

	parts := strings.Split(raw, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: raw}, nil
}

// String returns the underlying email address.
func (e Email) String() string {
	return e.value
}

// Equals reports whether two emails hold the same address.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
