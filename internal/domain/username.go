package domain

import (
	"errors"
	"strings"
)

// ErrEmptyUsername is returned when a username is empty or whitespace-only.
var ErrEmptyUsername = errors.New("username cannot be empty")

// Username is a validated username value object.
type Username struct {
	value string
}

// NewUsername creates a new Username from a raw string.
// Empty or whitespace-only values are rejected.
func NewUsername(raw string) (Username, error) {
	if strings.TrimSpace(raw) == "" {
		return Username{}, ErrEmptyUsername
	}

	return Username{value: raw}, nil
}

// String returns the underlying username.
func (u Username) String() string {
	return u.value
}

// Equals reports whether two usernames hold the same value.
func (u Username) Equals(other Username) bool {
	return u.value == other.value
}
