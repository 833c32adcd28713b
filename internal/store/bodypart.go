package store

import (
	"context"
	"database/sql"

	"github.com/repset/repset-api/internal/domain"
)

// BodyPartStore defines the interface for body part persistence.
// All operations are scoped by the owning user.
type BodyPartStore interface {
	// Create inserts a body part and returns it with its assigned ID.
	// Returns ErrBodyPartExists if the (user, name) pair is taken.
	Create(ctx context.Context, userID, name string) (*domain.BodyPart, error)

	// GetByID retrieves a body part by ID, scoped by user.
	// Returns ErrBodyPartNotFound on a miss.
	GetByID(ctx context.Context, id int64, userID string) (*domain.BodyPart, error)

	// GetByName retrieves a body part by its exact name.
	// Returns ErrBodyPartNotFound on a miss.
	GetByName(ctx context.Context, userID, name string) (*domain.BodyPart, error)

	// List returns all of the user's body parts ordered by name.
	List(ctx context.Context, userID string) ([]*domain.BodyPart, error)

	// UpdateName renames a body part and returns the updated row.
	// Returns ErrBodyPartNotFound on a miss and ErrBodyPartExists on
	// a name conflict.
	UpdateName(ctx context.Context, id int64, userID, name string) (*domain.BodyPart, error)

	// Delete removes a body part. The storage layer cascades to
	// dependent exercises, blocks and sets.
	// Returns ErrBodyPartNotFound on a miss.
	Delete(ctx context.Context, id int64, userID string) error

	// DeleteAll removes every body part owned by the user.
	DeleteAll(ctx context.Context, userID string) error

	// WithTx returns a BodyPartStore that runs against the given transaction.
	WithTx(tx *sql.Tx) BodyPartStore
}
