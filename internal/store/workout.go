package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/repset/repset-api/internal/domain"
)

// WorkoutStore defines the interface for workout persistence,
// including the workout↔body-part association.
type WorkoutStore interface {
	// Create inserts a workout for the given date and returns it with
	// its assigned ID. Returns ErrWorkoutExists if the user already has
	// a workout on that date.
	Create(ctx context.Context, userID, date string, startTime time.Time) (*domain.Workout, error)

	// GetByID retrieves a workout by ID, scoped by user.
	// Returns ErrWorkoutNotFound on a miss.
	GetByID(ctx context.Context, id int64, userID string) (*domain.Workout, error)

	// GetByDate retrieves the user's workout for a calendar date.
	// Returns ErrWorkoutNotFound on a miss.
	GetByDate(ctx context.Context, userID, date string) (*domain.Workout, error)

	// List returns all of the user's workouts ordered by date.
	List(ctx context.Context, userID string) ([]*domain.Workout, error)

	// SetEndTime records the workout's end time and returns the
	// updated row. Returns ErrWorkoutNotFound on a miss.
	SetEndTime(ctx context.Context, id int64, userID string, endTime time.Time) (*domain.Workout, error)

	// DeleteByDate removes the user's workout for a date. The storage
	// layer cascades to blocks and sets.
	// Returns ErrWorkoutNotFound on a miss.
	DeleteByDate(ctx context.Context, userID, date string) error

	// DeleteAll removes every workout owned by the user.
	DeleteAll(ctx context.Context, userID string) error

	// AddBodyParts associates body parts with a workout. Rows that are
	// already associated are skipped, so the operation is idempotent.
	AddBodyParts(ctx context.Context, workoutID int64, bodyPartIDs []int64) error

	// RemoveBodyParts removes workout↔body-part association rows. It
	// does not touch exercise blocks; the use-case layer deletes those
	// explicitly first.
	RemoveBodyParts(ctx context.Context, workoutID int64, bodyPartIDs []int64) error

	// ListBodyParts returns the body parts associated with a workout.
	ListBodyParts(ctx context.Context, workoutID int64) ([]*domain.BodyPart, error)

	// WithTx returns a WorkoutStore that runs against the given transaction.
	WithTx(tx *sql.Tx) WorkoutStore
}
