package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/repset/repset-api/internal/domain"
	"github.com/repset/repset-api/internal/platform/logger"
	"github.com/repset/repset-api/internal/store"
)

// ExerciseStore implements the store.ExerciseStore interface using a
// PostgreSQL database as the storage backend.
type ExerciseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewExerciseStore creates a new PostgreSQL implementation of the
// store.ExerciseStore interface. If logger is nil, a default logger is used.
func NewExerciseStore(db store.DBTX, logger *slog.Logger) *ExerciseStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ExerciseStore{
		db:     db,
		logger: logger.With(slog.String("component", "exercise_store")),
	}
}

var _ store.ExerciseStore = (*ExerciseStore)(nil)

func scanExercise(row *sql.Row) (*domain.Exercise, error) {
	var (
		id          int64
		userID      string
		name        string
		description sql.NullString
		bodyPartID  int64
	)
	if err := row.Scan(&id, &userID, &name, &description, &bodyPartID); err != nil {
		return nil, err
	}
	return domain.NewExerciseFromStorage(id, userID, name, description.String, bodyPartID)
}

// Create implements store.ExerciseStore.Create
func (s *ExerciseStore) Create(ctx context.Context, userID, name, description string, bodyPartID int64) (*domain.Exercise, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO exercises (user_id, name, description, body_part_id)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id, user_id, name, description, body_part_id
	`
	exercise, err := scanExercise(s.db.QueryRowContext(ctx, query, userID, name, description, bodyPartID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolationCode:
				log.Warn("duplicate exercise name",
					slog.String("user_id", userID),
					slog.String("name", name))
				return nil, fmt.Errorf("%w: %v", store.ErrExerciseExists, err)
			case foreignKeyViolationCode:
				log.Warn("exercise references missing body part",
					slog.String("user_id", userID),
					slog.Int64("body_part_id", bodyPartID))
				return nil, fmt.Errorf("%w: %v", store.ErrBodyPartNotFound, err)
			}
		}
		log.Error("failed to create exercise",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return nil, mapError(err)
	}

	log.Debug("exercise created",
		slog.Int64("exercise_id", exercise.ID),
		slog.String("user_id", userID))
	return exercise, nil
}

// GetByID implements store.ExerciseStore.GetByID
func (s *ExerciseStore) GetByID(ctx context.Context, id int64, userID string) (*domain.Exercise, error) {
	query := `
		SELECT id, user_id, name, description, body_part_id
		FROM exercises
		WHERE id = $1 AND user_id = $2
	`
	exercise, err := scanExercise(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrExerciseNotFound
		}
		return nil, mapError(err)
	}
	return exercise, nil
}

// GetByName implements store.ExerciseStore.GetByName
func (s *ExerciseStore) GetByName(ctx context.Context, userID, name string) (*domain.Exercise, error) {
	query := `
		SELECT id, user_id, name, description, body_part_id
		FROM exercises
		WHERE user_id = $1 AND name = $2
	`
	exercise, err := scanExercise(s.db.QueryRowContext(ctx, query, userID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrExerciseNotFound
		}
		return nil, mapError(err)
	}
	return exercise, nil
}

// List implements store.ExerciseStore.List
func (s *ExerciseStore) List(ctx context.Context, userID string) ([]*domain.Exercise, error) {
	query := `
		SELECT id, user_id, name, description, body_part_id
		FROM exercises
		WHERE user_id = $1
		ORDER BY name
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	return collectExercises(rows)
}

// ListByBodyPartIDs implements store.ExerciseStore.ListByBodyPartIDs
func (s *ExerciseStore) ListByBodyPartIDs(ctx context.Context, userID string, bodyPartIDs []int64) ([]*domain.Exercise, error) {
	if len(bodyPartIDs) == 0 {
		return []*domain.Exercise{}, nil
	}

	query := `
		SELECT id, user_id, name, description, body_part_id
		FROM exercises
		WHERE user_id = $1 AND body_part_id = ANY($2)
		ORDER BY name
	`
	rows, err := s.db.QueryContext(ctx, query, userID, bodyPartIDs)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	return collectExercises(rows)
}

func collectExercises(rows *sql.Rows) ([]*domain.Exercise, error) {
	exercises := make([]*domain.Exercise, 0)
	for rows.Next() {
		var (
			id          int64
			userID      string
			name        string
			description sql.NullString
			bodyPartID  int64
		)
		if err := rows.Scan(&id, &userID, &name, &description, &bodyPartID); err != nil {
			return nil, mapError(err)
		}
		exercise, err := domain.NewExerciseFromStorage(id, userID, name, description.String, bodyPartID)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return exercises, nil
}

// UpdateName implements store.ExerciseStore.UpdateName
func (s *ExerciseStore) UpdateName(ctx context.Context, id int64, userID, name string) (*domain.Exercise, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE exercises
		SET name = $3
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, description, body_part_id
	`
	exercise, err := scanExercise(s.db.QueryRowContext(ctx, query, id, userID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrExerciseNotFound
		}
		if IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %v", store.ErrExerciseExists, err)
		}
		log.Error("failed to rename exercise",
			slog.String("error", err.Error()),
			slog.Int64("exercise_id", id))
		return nil, mapError(err)
	}
	return exercise, nil
}

// Delete implements store.ExerciseStore.Delete
func (s *ExerciseStore) Delete(ctx context.Context, id int64, userID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx, `DELETE FROM exercises WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		log.Error("failed to delete exercise",
			slog.String("error", err.Error()),
			slog.Int64("exercise_id", id))
		return mapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if rows == 0 {
		return store.ErrExerciseNotFound
	}

	log.Debug("exercise deleted",
		slog.Int64("exercise_id", id),
		slog.String("user_id", userID))
	return nil
}

// DeleteAll implements store.ExerciseStore.DeleteAll
func (s *ExerciseStore) DeleteAll(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM exercises WHERE user_id = $1`, userID)
	if err != nil {
		return mapError(err)
	}
	return nil
}

// WithTx implements store.ExerciseStore.WithTx
func (s *ExerciseStore) WithTx(tx *sql.Tx) store.ExerciseStore {
	return &ExerciseStore{
		db:     tx,
		logger: s.logger,
	}
}
