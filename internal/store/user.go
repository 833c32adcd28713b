package store

import (
	"context"
	"database/sql"

	"github.com/repset/repset-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists or ErrUsernameExists on a uniqueness
	// conflict detected at the storage level.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Update modifies an existing user's details, including the
	// password hash. Returns ErrUserNotFound if the user does not
	// exist and ErrEmailExists on an email conflict.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user by ID. The storage layer cascades the
	// deletion to all owned rows. Returns ErrUserNotFound on a miss.
	Delete(ctx context.Context, id string) error

	// WithTx returns a UserStore that runs against the given transaction.
	WithTx(tx *sql.Tx) UserStore
}
