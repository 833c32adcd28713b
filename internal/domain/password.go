package domain

import "errors"

// minPasswordLength is the minimum length for a raw (pre-hash) password.
const minPasswordLength = 6

// ErrPasswordTooShort is returned when a raw password is shorter than
// the minimum length.
var ErrPasswordTooShort = errors.New("password must be at least 6 characters long")

// Password is a validated raw (pre-hash) password value object.
// Hashing is the responsibility of the application layer; this type
// only enforces the minimum-length rule on the plaintext.
type Password struct {
	value string
}

// NewPassword creates a new Password from a raw string.
// Returns an error if the password is shorter than 6 characters.
func NewPassword(raw string) (Password, error) {
	if len(raw) < minPasswordLength {
		return Password{}, ErrPasswordTooShort
	}

	return Password{value: raw}, nil
}

// Value returns the raw password. Callers must not log or persist it.
func (p Password) Value() string {
	return p.value
}

// Equals reports whether two passwords hold the same raw value.
// Used to reject a new password identical to the old one.
func (p Password) Equals(other Password) bool {
	return p.value == other.value
}
