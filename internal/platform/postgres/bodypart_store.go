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

// BodyPartStore implements the store.BodyPartStore interface using a
// PostgreSQL database as the storage backend.
type BodyPartStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewBodyPartStore creates a new PostgreSQL implementation of the
// store.BodyPartStore interface. If logger is nil, a default logger is used.
func NewBodyPartStore(db store.DBTX, logger *slog.Logger) *BodyPartStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &BodyPartStore{
		db:     db,
		logger: logger.With(slog.String("component", "bodypart_store")),
	}
}

var _ store.BodyPartStore = (*BodyPartStore)(nil)

func scanBodyPart(row *sql.Row) (*domain.BodyPart, error) {
	var (
		id     int64
		userID string
		name   string
	)
	if err := row.Scan(&id, &userID, &name); err != nil {
		return nil, err
	}
	return domain.NewBodyPartFromStorage(id, userID, name)
}

// Create implements store.BodyPartStore.Create
func (s *BodyPartStore) Create(ctx context.Context, userID, name string) (*domain.BodyPart, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO body_parts (user_id, name)
		VALUES ($1, $2)
		RETURNING id, user_id, name
	`
	bodyPart, err := scanBodyPart(s.db.QueryRowContext(ctx, query, userID, name))
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate body part name",
				slog.String("user_id", userID),
				slog.String("name", name))
			return nil, fmt.Errorf("%w: %v", store.ErrBodyPartExists, err)
		}
		log.Error("failed to create body part",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return nil, mapError(err)
	}

	log.Debug("body part created",
		slog.Int64("body_part_id", bodyPart.ID),
		slog.String("user_id", userID))
	return bodyPart, nil
}

// GetByID implements store.BodyPartStore.GetByID
func (s *BodyPartStore) GetByID(ctx context.Context, id int64, userID string) (*domain.BodyPart, error) {
	query := `
		SELECT id, user_id, name
		FROM body_parts
		WHERE id = $1 AND user_id = $2
	`
	bodyPart, err := scanBodyPart(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBodyPartNotFound
		}
		return nil, mapError(err)
	}
	return bodyPart, nil
}

// GetByName implements store.BodyPartStore.GetByName
func (s *BodyPartStore) GetByName(ctx context.Context, userID, name string) (*domain.BodyPart, error) {
	query := `
		SELECT id, user_id, name
		FROM body_parts
		WHERE user_id = $1 AND name = $2
	`
	bodyPart, err := scanBodyPart(s.db.QueryRowContext(ctx, query, userID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBodyPartNotFound
		}
		return nil, mapError(err)
	}
	return bodyPart, nil
}

// List implements store.BodyPartStore.List
func (s *BodyPartStore) List(ctx context.Context, userID string) ([]*domain.BodyPart, error) {
	query := `
		SELECT id, user_id, name
		FROM body_parts
		WHERE user_id = $1
		ORDER BY name
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	bodyParts := make([]*domain.BodyPart, 0)
	for rows.Next() {
		var (
			id        int64
			ownerID   string
			name      string
		)
		if err := rows.Scan(&id, &ownerID, &name); err != nil {
			return nil, mapError(err)
		}
		bodyPart, err := domain.NewBodyPartFromStorage(id, ownerID, name)
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

// UpdateName implements store.BodyPartStore.UpdateName
func (s *BodyPartStore) UpdateName(ctx context.Context, id int64, userID, name string) (*domain.BodyPart, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE body_parts
		SET name = $3
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name
	`
	bodyPart, err := scanBodyPart(s.db.QueryRowContext(ctx, query, id, userID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBodyPartNotFound
		}
		if IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %v", store.ErrBodyPartExists, err)
		}
		log.Error("failed to rename body part",
			slog.String("error", err.Error()),
			slog.Int64("body_part_id", id))
		return nil, mapError(err)
	}
	return bodyPart, nil
}

// Delete implements store.BodyPartStore.Delete
func (s *BodyPartStore) Delete(ctx context.Context, id int64, userID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx, `DELETE FROM body_parts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		log.Error("failed to delete body part",
			slog.String("error", err.Error()),
			slog.Int64("body_part_id", id))
		return mapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if rows == 0 {
		return store.ErrBodyPartNotFound
	}

	log.Debug("body part deleted",
		slog.Int64("body_part_id", id),
		slog.String("user_id", userID))
	return nil
}

// DeleteAll implements store.BodyPartStore.DeleteAll
func (s *BodyPartStore) DeleteAll(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM body_parts WHERE user_id = $1`, userID)
	if err != nil {
		return mapError(err)
	}
	return nil
}

// WithTx implements store.BodyPartStore.WithTx
func (s *BodyPartStore) WithTx(tx *sql.Tx) store.BodyPartStore {
	return &BodyPartStore{
		db:     tx,
		logger: s.logger,
	}
}
