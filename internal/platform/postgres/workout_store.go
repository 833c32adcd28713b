package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/repset/repset-api/internal/domain"
	"github.com/repset/repset-api/internal/platform/logger"
	"github.com/repset/repset-api/internal/store"
)

// WorkoutStore implements the store.WorkoutStore interface using a
// PostgreSQL database as the storage backend. It also owns the
// workout_body_parts join table.
type WorkoutStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewWorkoutStore creates a new PostgreSQL implementation of the
// store.WorkoutStore interface. If logger is nil, a default logger is used.
func NewWorkoutStore(db store.DBTX, logger *slog.Logger) *WorkoutStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &WorkoutStore{
		db:     db,
		logger: logger.With(slog.String("component", "workout_store")),
	}
}

var _ store.WorkoutStore = (*WorkoutStore)(nil)

func scanWorkout(row *sql.Row) (*domain.Workout, error) {
	var (
		id        int64
		userID    string
		date      string
		startTime time.Time
		endTime   sql.NullTime
	)
	if err := row.Scan(&id, &userID, &date, &startTime, &endTime); err != nil {
		return nil, err
	}

	var end *time.Time
	if endTime.Valid {
		end = &endTime.Time
	}
	return domain.NewWorkoutFromStorage(id, userID, date, startTime, end)
}

// Create implements store.WorkoutStore.Create
func (s *WorkoutStore) Create(ctx context.Context, userID, date string, startTime time.Time) (*domain.Workout, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO workouts (user_id, date, start_time)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, date, start_time, end_time
	`
	workout, err := scanWorkout(s.db.QueryRowContext(ctx, query, userID, date, startTime))
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("workout already exists for date",
				slog.String("user_id", userID),
				slog.String("date", date))
			return nil, fmt.Errorf("%w: %v", store.ErrWorkoutExists, err)
		}
		log.Error("failed to create workout",
			slog.String("error", err.Error()),
			slog.String("user_id", userID),
			slog.String("date", date))
		return nil, mapError(err)
	}

	log.Debug("workout created",
		slog.Int64("workout_id", workout.ID),
		slog.String("date", date))
	return workout, nil
}

// GetByID implements store.WorkoutStore.GetByID
func (s *WorkoutStore) GetByID(ctx context.Context, id int64, userID string) (*domain.Workout, error) {
	query := `
		SELECT id, user_id, date, start_time, end_time
		FROM workouts
		WHERE id = $1 AND user_id = $2
	`
	workout, err := scanWorkout(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrWorkoutNotFound
		}
		return nil, mapError(err)
	}
	return workout, nil
}

// GetByDate implements store.WorkoutStore.GetByDate
func (s *WorkoutStore) GetByDate(ctx context.Context, userID, date string) (*domain.Workout, error) {
	query := `
		SELECT id, user_id, date, start_time, end_time
		FROM workouts
		WHERE user_id = $1 AND date = $2
	`
	workout, err := scanWorkout(s.db.QueryRowContext(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrWorkoutNotFound
		}
		return nil, mapError(err)
	}
	return workout, nil
}

// List implements store.WorkoutStore.List
func (s *WorkoutStore) List(ctx context.Context, userID string) ([]*domain.Workout, error) {
	query := `
		SELECT id, user_id, date, start_time, end_time
		FROM workouts
		WHERE user_id = $1
		ORDER BY date DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	workouts := make([]*domain.Workout, 0)
	for rows.Next() {
		var (
			id        int64
			ownerID   string
			date      string
			startTime time.Time
			endTime   sql.NullTime
		)
		if err := rows.Scan(&id, &ownerID, &date, &startTime, &endTime); err != nil {
			return nil, mapError(err)
		}

		var end *time.Time
		if endTime.Valid {
			end = &endTime.Time
		}
		workout, err := domain.NewWorkoutFromStorage(id, ownerID, date, startTime, end)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return workouts, nil
}

// SetEndTime implements store.WorkoutStore.SetEndTime
func (s *WorkoutStore) SetEndTime(ctx context.Context, id int64, userID string, endTime time.Time) (*domain.Workout, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE workouts
		SET end_time = $3
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, date, start_time, end_time
	`
	workout, err := scanWorkout(s.db.QueryRowContext(ctx, query, id, userID, endTime))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrWorkoutNotFound
		}
		log.Error("failed to set workout end time",
			slog.String("error", err.Error()),
			slog.Int64("workout_id", id))
		return nil, mapError(err)
	}
	return workout, nil
}

// DeleteByDate implements store.WorkoutStore.DeleteByDate
func (s *WorkoutStore) DeleteByDate(ctx context.Context, userID, date string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx, `DELETE FROM workouts WHERE user_id = $1 AND date = $2`, userID, date)
	if err != nil {
		log.Error("failed to delete workout",
			slog.String("error", err.Error()),
			slog.String("user_id", userID),
			slog.String("date", date))
		return mapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if rows == 0 {
		return store.ErrWorkoutNotFound
	}

	log.Debug("workout deleted",
		slog.String("user_id", userID),
		slog.String("date", date))
	return nil
}

// DeleteAll implements store.WorkoutStore.DeleteAll
func (s *WorkoutStore) DeleteAll(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM workouts WHERE user_id = $1`, userID)
	if err != nil {
		return mapError(err)
	}
	return nil
}

// AddBodyParts implements store.WorkoutStore.AddBodyParts
func (s *WorkoutStore) AddBodyParts(ctx context.Context, workoutID int64, bodyPartIDs []int64) error {
	if len(bodyPartIDs) == 0 {
		return nil
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	// ON CONFLICT keeps the call idempotent when an association row
	// was inserted concurrently.
	query := `
		INSERT INTO workout_body_parts (workout_id, body_part_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT (workout_id, body_part_id) DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, query, workoutID, bodyPartIDs); err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrBodyPartNotFound, err)
		}
		log.Error("failed to add body parts to workout",
			slog.String("error", err.Error()),
			slog.Int64("workout_id", workoutID))
		return mapError(err)
	}

	return nil
}

// RemoveBodyParts implements store.WorkoutStore.RemoveBodyParts
func (s *WorkoutStore) RemoveBodyParts(ctx context.Context, workoutID int64, bodyPartIDs []int64) error {
	if len(bodyPartIDs) == 0 {
		return nil
	}

	query := `
		DELETE FROM workout_body_parts
		WHERE workout_id = $1 AND body_part_id = ANY($2)
	`
	if _, err := s.db.ExecContext(ctx, query, workoutID, bodyPartIDs); err != nil {
		return mapError(err)
	}
	return nil
}

// ListBodyParts implements store.WorkoutStore.ListBodyParts
func (s *WorkoutStore) ListBodyParts(ctx context.Context, workoutID int64) ([]*domain.BodyPart, error) {
	query := `
		SELECT bp.id, bp.user_id, bp.name
		FROM body_parts bp
		JOIN workout_body_parts wbp ON wbp.body_part_id = bp.id
		WHERE wbp.workout_id = $1
		ORDER BY bp.name
	`
	rows, err := s.db.QueryContext(ctx, query, workoutID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	bodyParts := make([]*domain.BodyPart, 0)
	for rows.Next() {
		var (
			id     int64
			userID string
			name   string
		)
		if err := rows.Scan(&id, &userID, &name); err != nil {
			return nil, mapError(err)
		}
		bodyPart, err := domain.NewBodyPartFromStorage(id, userID, name)
		if err != nil {
			return nil, err
		}
		bodyParts = append(bodyParts, bodyPart)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return bodyParts, nil
}

// WithTx implements store.WorkoutStore.WithTx
func (s *WorkoutStore) WithTx(tx *sql.Tx) store.WorkoutStore {
	return &WorkoutStore{
		db:     tx,
		logger: s.logger,
	}
}
