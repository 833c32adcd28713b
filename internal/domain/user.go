package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyUserID is returned when a user ID is empty.
var ErrEmptyUserID = errors.New("user ID cannot be empty")

// User represents a registered user of the application.
// Some accounts are passwordless (created through an external identity
// provider), so HashedPassword may be empty.
type User struct {
	ID             string    `json:"id"`
	email          Email     `json:"-"`
	username       Username  `json:"-"`
	HashedPassword string    `json:"-"` // Never expose the password hash
	EmailVerified  bool      `json:"email_verified"`
	Image          string    `json:"image,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given email and username.
// It generates a new UUID for the user ID and sets the creation/update
// timestamps. The hashed password may be empty for passwordless accounts.
// Returns an error if validation fails.
func NewUser(email, username, hashedPassword string) (*User, error) {
	emailVO, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	usernameVO, err := NewUsername(username)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		ID:             uuid.NewString(),
		email:          emailVO,
		username:       usernameVO,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// NewUserFromStorage reconstructs a User from a persisted row,
// re-running all invariants so that corrupted or hand-edited rows fail
// loudly instead of silently entering the domain layer.
func NewUserFromStorage(
	id, email, username, hashedPassword string,
	emailVerified bool,
	image string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == "" {
		return nil, ErrEmptyUserID
	}

	emailVO, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	usernameVO, err := NewUsername(username)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:             id,
		email:          emailVO,
		username:       usernameVO,
		HashedPassword: hashedPassword,
		EmailVerified:  emailVerified,
		Image:          image,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email.String()
}

// Username returns the user's username.
func (u *User) Username() string {
	return u.username.String()
}

// SetEmail replaces the user's email address after validating it.
func (u *User) SetEmail(email string) error {
	emailVO, err := NewEmail(email)
	if err != nil {
		return err
	}
	u.email = emailVO
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// SetUsername replaces the user's username after validating it.
func (u *User) SetUsername(username string) error {
	usernameVO, err := NewUsername(username)
	if err != nil {
		return err
	}
	u.username = usernameVO
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// HasPassword reports whether the account carries a password hash.
func (u *User) HasPassword() bool {
	return u.HashedPassword != ""
}

// BelongsTo reports whether this user record is the given user.
func (u *User) BelongsTo(userID string) bool {
	return u.ID == userID
}

// HasEmail reports whether the user's email matches.
func (u *User) HasEmail(email string) bool {
	return u.email.String() == email
}

// HasUsername reports whether the user's username matches.
func (u *User) HasUsername(username string) bool {
	return u.username.String() == username
}

// IsEmailVerified reports whether the user's email has been verified.
func (u *User) IsEmailVerified() bool {
	return u.EmailVerified
}
