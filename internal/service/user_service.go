package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/repset/repset-api/internal/domain"
	"github.com/repset/repset-api/internal/service/auth"
	"github.com/repset/repset-api/internal/store"
)

// errWrongOldPassword marks an old-password mismatch inside the
// change-password transaction so it can roll back and map cleanly.
var errWrongOldPassword = errors.New("old password does not match")

// UserService provides account-related operations.
type UserService interface {
	// Register creates a new account with the given credentials.
	Register(ctx context.Context, email, username, password string) (*domain.User, error)

	// GetUser retrieves a user by their ID
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by their email address
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// Authenticate verifies an email/password pair and returns the
	// matching user.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// UpdateUserEmail updates a user's email address
	// Note: This uses the pattern of first retrieving the full user, then updating the specific field,
	// and finally passing the complete user object back to the store layer
	UpdateUserEmail(ctx context.Context, userID, newEmail string) error

	// UpdateUserPassword changes a user's password after verifying the
	// old one. The new password must differ from the old.
	// Following the pattern of getting the full user first, then updating only the specific field
	UpdateUserPassword(ctx context.Context, userID, oldPassword, newPassword string) error

	// DeleteUser deletes a user by their ID
	DeleteUser(ctx context.Context, userID string) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	runTx     store.TxRunner
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	runTx store.TxRunner,
	logger *slog.Logger,
) UserService {
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		verifier:  verifier,
		runTx:     runTx,
		logger:    logger.With("component", "user_service"),
	}
}

// classifyEmailError keeps the dedicated invalid-email code separate
// from generic validation failures.
func classifyEmailError(err error) *Error {
	if errors.Is(err, domain.ErrInvalidEmail) || errors.Is(err, domain.ErrEmptyEmail) {
		return NewError(CodeInvalidEmail, "invalid email address", err)
	}
	return NewError(CodeValidation, err.Error(), err)
}

// Register creates a new account with the given credentials.
// Uses a transaction to ensure atomicity of the operation.
func (s *UserServiceImpl) Register(ctx context.Context, email, username, password string) (*domain.User, error) {
	pw, err := domain.NewPassword(password)
	if err != nil {
		return nil, NewError(CodeValidation, err.Error(), err)
	}

	hash, err := s.hasher.Hash(pw.Value())
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err)
		return nil, internalError("failed to hash password", err)
	}

	user, err := domain.NewUser(email, username, hash)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) || errors.Is(err, domain.ErrEmptyEmail) {
			return nil, classifyEmailError(err)
		}
		return nil, NewError(CodeValidation, err.Error(), err)
	}

	err = s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("attempted to register existing account",
				"email", email)
			return nil, NewError(CodeUserAlreadyExists, "an account with these credentials already exists", err)
		}
		s.logger.Error("failed to save user",
			"error", err,
			"email", email)
		return nil, internalError("failed to create user", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID)
	return user, nil
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, NewError(CodeUserNotFound, "user not found", err)
		}
		s.logger.Error("failed to retrieve user",
			"error", err,
			"user_id", userID)
		return nil, internalError("failed to retrieve user", err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by their email address
func (s *UserServiceImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found by email",
				"email", email)
			return nil, NewError(CodeUserNotFound, "user not found", err)
		}
		s.logger.Error("failed to retrieve user by email",
			"error", err,
			"email", email)
		return nil, internalError("failed to retrieve user by email", err)
	}

	return user, nil
}

// Authenticate verifies an email/password pair. Misses and mismatches
// both come back as CodeUnauthorized so callers cannot distinguish
// unknown accounts from wrong passwords.
func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, NewError(CodeUnauthorized, "invalid credentials", err)
		}
		s.logger.Error("failed to look up user for authentication",
			"error", err)
		return nil, internalError("failed to authenticate", err)
	}

	if !user.HasPassword() {
		return nil, NewError(CodeUnauthorized, "invalid credentials", nil)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("password mismatch",
			"user_id", user.ID)
		return nil, NewError(CodeUnauthorized, "invalid credentials", err)
	}

	return user, nil
}

// UpdateUserEmail updates a user's email address
// Following the pattern of getting the complete user first, then updating the specific field
// Uses a transaction to ensure atomicity of the operation
func (s *UserServiceImpl) UpdateUserEmail(ctx context.Context, userID, newEmail string) error {
	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if !user.BelongsTo(userID) {
			return store.ErrUserNotFound
		}

		if err := user.SetEmail(newEmail); err != nil {
			return err
		}

		return txStore.Update(ctx, user)
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			return NewError(CodeUserNotFound, "user not found", err)
		case errors.Is(err, domain.ErrInvalidEmail), errors.Is(err, domain.ErrEmptyEmail):
			return classifyEmailError(err)
		case store.IsDuplicateError(err):
			return NewError(CodeUserAlreadyExists, "email already in use", err)
		}
		s.logger.Error("failed to update user email",
			"error", err,
			"user_id", userID)
		return internalError("failed to update email", err)
	}

	s.logger.Info("user email updated",
		"user_id", userID)
	return nil
}

// UpdateUserPassword changes a user's password. The caller proves
// knowledge of the current password, and the replacement must differ.
func (s *UserServiceImpl) UpdateUserPassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	pw, err := domain.NewPassword(newPassword)
	if err != nil {
		return NewError(CodeValidation, err.Error(), err)
	}
	if newPassword == oldPassword {
		return NewError(CodeValidation, "new password must differ from the old password", nil)
	}

	hash, err := s.hasher.Hash(pw.Value())
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"user_id", userID)
		return internalError("failed to hash password", err)
	}

	err = s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if !user.BelongsTo(userID) {
			return store.ErrUserNotFound
		}

		if err := s.verifier.Compare(user.HashedPassword, oldPassword); err != nil {
			return errWrongOldPassword
		}

		user.HashedPassword = hash
		return txStore.Update(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return NewError(CodeUserNotFound, "user not found", err)
		}
		if errors.Is(err, errWrongOldPassword) {
			return NewError(CodeUnauthorized, "old password is incorrect", err)
		}
		s.logger.Error("failed to update user password",
			"error", err,
			"user_id", userID)
		return internalError("failed to update password", err)
	}

	s.logger.Info("user password updated",
		"user_id", userID)
	return nil
}

// DeleteUser deletes a user by their ID
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userStore.Delete(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return NewError(CodeUserNotFound, "user not found", err)
		}
		s.logger.Error("failed to delete user",
			"error", err,
			"user_id", userID)
		return internalError("failed to delete user", err)
	}

	s.logger.Info("user deleted",
		"user_id", userID)
	return nil
}
