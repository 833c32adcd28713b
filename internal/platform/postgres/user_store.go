package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/repset/repset-api/internal/domain"
	"github.com/repset/repset-api/internal/platform/logger"
	"github.com/repset/repset-api/internal/store"
)

// UserStore implements the store.UserStore interface using a PostgreSQL
// database as the storage backend.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the
// store.UserStore interface. If logger is nil, a default logger is used.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*UserStore)(nil)

// userRow is the scan target for user queries.
type userRow struct {
	id             string
	email          string
	username       string
	hashedPassword sql.NullString
	emailVerified  sql.NullBool
	image          sql.NullString
	createdAt      time.Time
	updatedAt      time.Time
}

func (r userRow) toDomain() (*domain.User, error) {
	return domain.NewUserFromStorage(
		r.id,
		r.email,
		r.username,
		r.hashedPassword.String,
		r.emailVerified.Bool,
		r.image.String,
		r.createdAt,
		r.updatedAt,
	)
}

// uniqueConstraintError maps a unique violation to the matching
// sentinel based on the constraint name.
func uniqueConstraintError(pgErr *pgconn.PgError) error {
	if strings.Contains(pgErr.ConstraintName, "email") {
		return store.ErrEmailExists
	}
	if strings.Contains(pgErr.ConstraintName, "username") {
		return store.ErrUsernameExists
	}
	return store.ErrDuplicate
}

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO users (id, email, username, password, email_verified, image, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email(),
		user.Username(),
		user.HashedPassword,
		user.EmailVerified,
		user.Image,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			log.Warn("unique violation during user creation",
				slog.String("constraint", pgErr.ConstraintName),
				slog.String("user_id", user.ID))
			return fmt.Errorf("%w: %v", uniqueConstraintError(pgErr), err)
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID))
		return mapError(err)
	}

	log.Info("user created", slog.String("user_id", user.ID))
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.getOne(ctx, "id", id)
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx, "email", email)
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getOne(ctx, "username", username)
}

func (s *UserStore) getOne(ctx context.Context, column, value string) (*domain.User, error) {
	query := fmt.Sprintf(`
		SELECT id, email, username, password, email_verified, image, created_at, updated_at
		FROM users
		WHERE %s = $1
	`, column)

	var row userRow
	err := s.db.QueryRowContext(ctx, query, value).Scan(
		&row.id,
		&row.email,
		&row.username,
		&row.hashedPassword,
		&row.emailVerified,
		&row.image,
		&row.createdAt,
		&row.updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, mapError(err)
	}

	return row.toDomain()
}

// Update implements store.UserStore.Update
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET email = $2, username = $3, password = NULLIF($4, ''),
		    email_verified = $5, image = NULLIF($6, ''), updated_at = $7
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email(),
		user.Username(),
		user.HashedPassword,
		user.EmailVerified,
		user.Image,
		time.Now().UTC(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: %v", uniqueConstraintError(pgErr), err)
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID))
		return mapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if rows == 0 {
		return store.ErrUserNotFound
	}

	return nil
}

// Delete implements store.UserStore.Delete
func (s *UserStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id))
		return mapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if rows == 0 {
		return store.ErrUserNotFound
	}

	log.Info("user deleted", slog.String("user_id", id))
	return nil
}

// WithTx implements store.UserStore.WithTx
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &UserStore{
		db:     tx,
		logger: s.logger,
	}
}
