package store

import (
	"context"
	"database/sql"

	"github.com/repset/repset-api/internal/domain"
)

// ExerciseBlockStore defines the interface for exercise block
// persistence. Blocks are unique per (workout, exercise).
type ExerciseBlockStore interface {
	// Create inserts a block and returns it with its assigned ID and
	// no sets. Returns ErrExerciseBlockExists if the (workout,
	// exercise) pair is taken.
	Create(ctx context.Context, userID string, workoutID, exerciseID int64) (*domain.ExerciseBlock, error)

	// GetByWorkoutAndExercise retrieves the block for a (workout,
	// exercise) pair with its sets loaded in set-number order.
	// Returns ErrExerciseBlockNotFound on a miss.
	GetByWorkoutAndExercise(ctx context.Context, userID string, workoutID, exerciseID int64) (*domain.ExerciseBlock, error)

	// ListByWorkout returns the workout's blocks with sets loaded.
	ListByWorkout(ctx context.Context, userID string, workoutID int64) ([]*domain.ExerciseBlock, error)

	// ListByWorkoutAndExercises returns the workout's blocks that
	// reference any of the given exercises. An empty ID list yields an
	// empty result.
	ListByWorkoutAndExercises(ctx context.Context, userID string, workoutID int64, exerciseIDs []int64) ([]*domain.ExerciseBlock, error)

	// Delete removes a block. The storage layer cascades to its sets.
	// Returns ErrExerciseBlockNotFound on a miss.
	Delete(ctx context.Context, id int64, userID string) error

	// DeleteByWorkoutAndExercise removes the block for a (workout,
	// exercise) pair. Returns ErrExerciseBlockNotFound on a miss.
	DeleteByWorkoutAndExercise(ctx context.Context, userID string, workoutID, exerciseID int64) error

	// DeleteAll removes every block owned by the user.
	DeleteAll(ctx context.Context, userID string) error

	// WithTx returns an ExerciseBlockStore that runs against the given transaction.
	WithTx(tx *sql.Tx) ExerciseBlockStore
}
