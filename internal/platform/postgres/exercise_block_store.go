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

// ExerciseBlockStore implements the store.ExerciseBlockStore interface
// using a PostgreSQL database as the storage backend. Reads return
// blocks with their sets loaded in set-number order.
type ExerciseBlockStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewExerciseBlockStore creates a new PostgreSQL implementation of the
// store.ExerciseBlockStore interface. If logger is nil, a default
// logger is used.
func NewExerciseBlockStore(db store.DBTX, logger *slog.Logger) *ExerciseBlockStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ExerciseBlockStore{
		db:     db,
		logger: logger.With(slog.String("component", "exercise_block_store")),
	}
}

var _ store.ExerciseBlockStore = (*ExerciseBlockStore)(nil)

// Create implements store.ExerciseBlockStore.Create
func (s *ExerciseBlockStore) Create(ctx context.Context, userID string, workoutID, exerciseID int64) (*domain.ExerciseBlock, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO exercise_blocks (user_id, workout_id, exercise_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	err := s.db.QueryRowContext(ctx, query, userID, workoutID, exerciseID).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolationCode:
				log.Warn("exercise block already exists",
					slog.Int64("workout_id", workoutID),
					slog.Int64("exercise_id", exerciseID))
				return nil, fmt.Errorf("%w: %v", store.ErrExerciseBlockExists, err)
			case foreignKeyViolationCode:
				return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
			}
		}
		log.Error("failed to create exercise block",
			slog.String("error", err.Error()),
			slog.Int64("workout_id", workoutID))
		return nil, mapError(err)
	}

	log.Debug("exercise block created",
		slog.Int64("exercise_block_id", id),
		slog.Int64("workout_id", workoutID))
	return domain.NewExerciseBlockFromStorage(id, userID, workoutID, exerciseID, []domain.Set{})
}

// GetByWorkoutAndExercise implements store.ExerciseBlockStore.GetByWorkoutAndExercise
func (s *ExerciseBlockStore) GetByWorkoutAndExercise(ctx context.Context, userID string, workoutID, exerciseID int64) (*domain.ExerciseBlock, error) {
	query := `
		SELECT id, user_id, workout_id, exercise_id
		FROM exercise_blocks
		WHERE user_id = $1 AND workout_id = $2 AND exercise_id = $3
	`
	var (
		id      int64
		ownerID string
		wID     int64
		eID     int64
	)
	err := s.db.QueryRowContext(ctx, query, userID, workoutID, exerciseID).
		Scan(&id, &ownerID, &wID, &eID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrExerciseBlockNotFound
		}
		return nil, mapError(err)
	}

	sets, err := s.loadSets(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.NewExerciseBlockFromStorage(id, ownerID, wID, eID, sets)
}

// ListByWorkout implements store.ExerciseBlockStore.ListByWorkout
func (s *ExerciseBlockStore) ListByWorkout(ctx context.Context, userID string, workoutID int64) ([]*domain.ExerciseBlock, error) {
	query := `
		SELECT id, user_id, workout_id, exercise_id
		FROM exercise_blocks
		WHERE user_id = $1 AND workout_id = $2
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, userID, workoutID)
	if err != nil {
		return nil, mapError(err)
	}
	return s.collectBlocks(ctx, rows)
}

// ListByWorkoutAndExercises implements store.ExerciseBlockStore.ListByWorkoutAndExercises
func (s *ExerciseBlockStore) ListByWorkoutAndExercises(ctx context.Context, userID string, workoutID int64, exerciseIDs []int64) ([]*domain.ExerciseBlock, error) {
	if len(exerciseIDs) == 0 {
		return []*domain.ExerciseBlock{}, nil
	}

	query := `
		SELECT id, user_id, workout_id, exercise_id
		FROM exercise_blocks
		WHERE user_id = $1 AND workout_id = $2 AND exercise_id = ANY($3)
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, userID, workoutID, exerciseIDs)
	if err != nil {
		return nil, mapError(err)
	}
	return s.collectBlocks(ctx, rows)
}

func (s *ExerciseBlockStore) collectBlocks(ctx context.Context, rows *sql.Rows) ([]*domain.ExerciseBlock, error) {
	defer rows.Close()

	type blockRow struct {
		id         int64
		userID     string
		workoutID  int64
		exerciseID int64
	}

	blockRows := make([]blockRow, 0)
	for rows.Next() {
		var r blockRow
		if err := rows.Scan(&r.id, &r.userID, &r.workoutID, &r.exerciseID); err != nil {
			return nil, mapError(err)
		}
		blockRows = append(blockRows, r)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	// The sets query has to wait until the block rows are drained:
	// a DBTX backed by *sql.Tx allows one active result set at a time.
	blocks := make([]*domain.ExerciseBlock, 0, len(blockRows))
	for _, r := range blockRows {
		sets, err := s.loadSets(ctx, r.id)
		if err != nil {
			return nil, err
		}
		block, err := domain.NewExerciseBlockFromStorage(r.id, r.userID, r.workoutID, r.exerciseID, sets)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}

func (s *ExerciseBlockStore) loadSets(ctx context.Context, blockID int64) ([]domain.Set, error) {
	query := `
		SELECT id, user_id, exercise_block_id, set_number, weight, reps
		FROM sets
		WHERE exercise_block_id = $1
		ORDER BY set_number
	`
	rows, err := s.db.QueryContext(ctx, query, blockID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	sets := make([]domain.Set, 0)
	for rows.Next() {
		var (
			id        int64
			userID    string
			bID       int64
			setNumber int
			weight    float64
			reps      int
		)
		if err := rows.Scan(&id, &userID, &bID, &setNumber, &weight, &reps); err != nil {
			return nil, mapError(err)
		}
		set, err := domain.NewSetFromStorage(id, userID, bID, setNumber, weight, reps)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return sets, nil
}

// Delete implements store.ExerciseBlockStore.Delete
func (s *ExerciseBlockStore) Delete(ctx context.Context, id int64, userID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx, `DELETE FROM exercise_blocks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		log.Error("failed to delete exercise block",
			slog.String("error", err.Error()),
			slog.Int64("exercise_block_id", id))
		return mapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if rows == 0 {
		return store.ErrExerciseBlockNotFound
	}

	return nil
}

// DeleteByWorkoutAndExercise implements store.ExerciseBlockStore.DeleteByWorkoutAndExercise
func (s *ExerciseBlockStore) DeleteByWorkoutAndExercise(ctx context.Context, userID string, workoutID, exerciseID int64) error {
	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM exercise_blocks WHERE user_id = $1 AND workout_id = $2 AND exercise_id = $3`,
		userID, workoutID, exerciseID)
	if err != nil {
		return mapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if rows == 0 {
		return store.ErrExerciseBlockNotFound
	}

	return nil
}

// DeleteAll implements store.ExerciseBlockStore.DeleteAll
func (s *ExerciseBlockStore) DeleteAll(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM exercise_blocks WHERE user_id = $1`, userID)
	if err != nil {
		return mapError(err)
	}
	return nil
}

// WithTx implements store.ExerciseBlockStore.WithTx
func (s *ExerciseBlockStore) WithTx(tx *sql.Tx) store.ExerciseBlockStore {
	return &ExerciseBlockStore{
		db:     tx,
		logger: s.logger,
	}
}
