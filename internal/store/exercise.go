package store

import (
	"context"
	"database/sql"

	"github.com/repset/repset-api/internal/domain"
)

// ExerciseStore defines the interface for exercise persistence.
// All operations are scoped by the owning user.
type ExerciseStore interface {
	// Create inserts an exercise and returns it with its assigned ID.
	// Returns ErrExerciseExists if the (user, name) pair is taken and
	// ErrInvalidEntity if the body part reference is broken.
	Create(ctx context.Context, userID, name, description string, bodyPartID int64) (*domain.Exercise, error)

	// GetByID retrieves an exercise by ID, scoped by user.
	// Returns ErrExerciseNotFound on a miss.
	GetByID(ctx context.Context, id int64, userID string) (*domain.Exercise, error)

	// GetByName retrieves an exercise by its exact name.
	// Returns ErrExerciseNotFound on a miss.
	GetByName(ctx context.Context, userID, name string) (*domain.Exercise, error)

	// List returns all of the user's exercises ordered by name.
	List(ctx context.Context, userID string) ([]*domain.Exercise, error)

	// ListByBodyPartIDs returns the user's exercises attached to any
	// of the given body parts. An empty ID list yields an empty result.
	ListByBodyPartIDs(ctx context.Context, userID string, bodyPartIDs []int64) ([]*domain.Exercise, error)

	// UpdateName renames an exercise and returns the updated row.
	// Returns ErrExerciseNotFound on a miss and ErrExerciseExists on
	// a name conflict.
	UpdateName(ctx context.Context, id int64, userID, name string) (*domain.Exercise, error)

	// Delete removes an exercise. The storage layer cascades to
	// dependent blocks and sets. Returns ErrExerciseNotFound on a miss.
	Delete(ctx context.Context, id int64, userID string) error

	// DeleteAll removes every exercise owned by the user.
	DeleteAll(ctx context.Context, userID string) error

	// WithTx returns an ExerciseStore that runs against the given transaction.
	WithTx(tx *sql.Tx) ExerciseStore
}
