package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/repset/repset-api/internal/domain"
	"github.com/repset/repset-api/internal/platform/logger"
	"github.com/repset/repset-api/internal/store"
)

// SetStore implements the store.SetStore interface using a PostgreSQL
// database as the storage backend.
type SetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSetStore creates a new PostgreSQL implementation of the
// store.SetStore interface. If logger is nil, a default logger is used.
func NewSetStore(db store.DBTX, logger *slog.Logger) *SetStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SetStore{
		db:     db,
		logger: logger.With(slog.String("component", "set_store")),
	}
}

var _ store.SetStore = (*SetStore)(nil)

func scanSet(row *sql.Row) (domain.Set, error) {
	var (
		id        int64
		userID    string
		blockID   int64
		setNumber int
		weight    float64
		reps      int
	)
	if err := row.Scan(&id, &userID, &blockID, &setNumber, &weight, &reps); err != nil {
		return domain.Set{}, err
	}
	return domain.NewSetFromStorage(id, userID, blockID, setNumber, weight, reps)
}

// Create implements store.SetStore.Create
func (s *SetStore) Create(ctx context.Context, set domain.Set) (domain.Set, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO sets (user_id, exercise_block_id, set_number, weight, reps)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, exercise_block_id, set_number, weight, reps
	`
	created, err := scanSet(s.db.QueryRowContext(
		ctx, query, set.UserID, set.ExerciseBlockID, set.SetNumber, set.Weight, set.Reps))
	if err != nil {
		if IsForeignKeyViolation(err) {
			return domain.Set{}, fmt.Errorf("%w: %v", store.ErrExerciseBlockNotFound, err)
		}
		log.Error("failed to create set",
			slog.String("error", err.Error()),
			slog.Int64("exercise_block_id", set.ExerciseBlockID))
		return domain.Set{}, mapError(err)
	}

	log.Debug("set created",
		slog.Int64("set_id", created.ID),
		slog.Int64("exercise_block_id", created.ExerciseBlockID),
		slog.Int("set_number", created.SetNumber))
	return created, nil
}

// GetByID implements store.SetStore.GetByID
func (s *SetStore) GetByID(ctx context.Context, id int64, userID string) (domain.Set, error) {
	query := `
		SELECT id, user_id, exercise_block_id, set_number, weight, reps
		FROM sets
		WHERE id = $1 AND user_id = $2
	`
	set, err := scanSet(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Set{}, store.ErrSetNotFound
		}
		return domain.Set{}, mapError(err)
	}
	return set, nil
}

// ListByBlock implements store.SetStore.ListByBlock
func (s *SetStore) ListByBlock(ctx context.Context, exerciseBlockID int64) ([]domain.Set, error) {
	query := `
		SELECT id, user_id, exercise_block_id, set_number, weight, reps
		FROM sets
		WHERE exercise_block_id = $1
		ORDER BY set_number
	`
	rows, err := s.db.QueryContext(ctx, query, exerciseBlockID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	sets := make([]domain.Set, 0)
	for rows.Next() {
		var (
			id        int64
			userID    string
			blockID   int64
			setNumber int
			weight    float64
			reps      int
		)
		if err := rows.Scan(&id, &userID, &blockID, &setNumber, &weight, &reps); err != nil {
			return nil, mapError(err)
		}
		set, err := domain.NewSetFromStorage(id, userID, blockID, setNumber, weight, reps)
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

// GetByBlockAndReps implements store.SetStore.GetByBlockAndReps
func (s *SetStore) GetByBlockAndReps(ctx context.Context, exerciseBlockID int64, reps int) (domain.Set, error) {
	query := `
		SELECT id, user_id, exercise_block_id, set_number, weight, reps
		FROM sets
		WHERE exercise_block_id = $1 AND reps = $2
		ORDER BY set_number
		LIMIT 1
	`
	set, err := scanSet(s.db.QueryRowContext(ctx, query, exerciseBlockID, reps))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Set{}, store.ErrSetNotFound
		}
		return domain.Set{}, mapError(err)
	}
	return set, nil
}

// Update implements store.SetStore.Update
func (s *SetStore) Update(ctx context.Context, id int64, weight float64, reps int) (domain.Set, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE sets
		SET weight = $2, reps = $3
		WHERE id = $1
		RETURNING id, user_id, exercise_block_id, set_number, weight, reps
	`
	set, err := scanSet(s.db.QueryRowContext(ctx, query, id, weight, reps))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Set{}, store.ErrSetNotFound
		}
		log.Error("failed to update set",
			slog.String("error", err.Error()),
			slog.Int64("set_id", id))
		return domain.Set{}, mapError(err)
	}
	return set, nil
}

// UpdateNumber implements store.SetStore.UpdateNumber
func (s *SetStore) UpdateNumber(ctx context.Context, id int64, setNumber int) error {
	result, err := s.db.ExecContext(
		ctx, `UPDATE sets SET set_number = $2 WHERE id = $1`, id, setNumber)
	if err != nil {
		return mapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if rows == 0 {
		return store.ErrSetNotFound
	}

	return nil
}

// Delete implements store.SetStore.Delete
func (s *SetStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM sets WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete set",
			slog.String("error", err.Error()),
			slog.Int64("set_id", id))
		return mapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if rows == 0 {
		return store.ErrSetNotFound
	}

	return nil
}

// WithTx implements store.SetStore.WithTx
func (s *SetStore) WithTx(tx *sql.Tx) store.SetStore {
	return &SetStore{
		db:     tx,
		logger: s.logger,
	}
}
