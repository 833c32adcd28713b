package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/repset/repset-api/internal/domain"
	"github.com/repset/repset-api/internal/store"
)

// BodyPartService provides operations on a user's body part catalog.
type BodyPartService interface {
	// ListBodyParts returns all of the user's body parts.
	ListBodyParts(ctx context.Context, userID string) ([]*domain.BodyPart, error)

	// CreateBodyPart adds a body part to the user's catalog. Unlike
	// exercises, creating an existing body part is an error rather
	// than a silent lookup.
	CreateBodyPart(ctx context.Context, userID, name string) (*domain.BodyPart, error)

	// RenameBodyPart changes a body part's name.
	RenameBodyPart(ctx context.Context, userID string, id int64, name string) (*domain.BodyPart, error)

	// DeleteBodyPart removes a body part and everything attached to it.
	DeleteBodyPart(ctx context.Context, userID string, id int64) error

	// DeleteAllBodyParts clears the user's catalog.
	DeleteAllBodyParts(ctx context.Context, userID string) error
}

// BodyPartServiceImpl implements the BodyPartService interface
type BodyPartServiceImpl struct {
	bodyParts store.BodyPartStore
	logger    *slog.Logger
}

// NewBodyPartService creates a new BodyPartService
func NewBodyPartService(bodyParts store.BodyPartStore, logger *slog.Logger) BodyPartService {
	return &BodyPartServiceImpl{
		bodyParts: bodyParts,
		logger:    logger.With("component", "bodypart_service"),
	}
}

// ListBodyParts returns all of the user's body parts.
func (s *BodyPartServiceImpl) ListBodyParts(ctx context.Context, userID string) ([]*domain.BodyPart, error) {
	bodyParts, err := s.bodyParts.List(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list body parts",
			"error", err,
			"user_id", userID)
		return nil, internalError("failed to list body parts", err)
	}
	return bodyParts, nil
}

// CreateBodyPart adds a body part to the user's catalog.
func (s *BodyPartServiceImpl) CreateBodyPart(ctx context.Context, userID, name string) (*domain.BodyPart, error) {
	nameVO, err := domain.NewBodyPartName(name)
	if err != nil {
		return nil, NewError(CodeValidation, err.Error(), err)
	}

	// Check first so the common duplicate case gets a clean answer;
	// the unique constraint still backstops a lost race below.
	_, err = s.bodyParts.GetByName(ctx, userID, nameVO.String())
	if err == nil {
		return nil, NewError(CodeBodyPartAlreadyExists, "body part already exists", nil)
	}
	if !errors.Is(err, store.ErrBodyPartNotFound) {
		s.logger.Error("failed to check body part existence",
			"error", err,
			"user_id", userID)
		return nil, internalError("failed to create body part", err)
	}

	bodyPart, err := s.bodyParts.Create(ctx, userID, nameVO.String())
	if err != nil {
		if errors.Is(err, store.ErrBodyPartExists) {
			return nil, NewError(CodeBodyPartAlreadyExists, "body part already exists", err)
		}
		s.logger.Error("failed to create body part",
			"error", err,
			"user_id", userID)
		return nil, internalError("failed to create body part", err)
	}

	s.logger.Info("body part created",
		"user_id", userID,
		"body_part_id", bodyPart.ID)
	return bodyPart, nil
}

// RenameBodyPart changes a body part's name.
func (s *BodyPartServiceImpl) RenameBodyPart(ctx context.Context, userID string, id int64, name string) (*domain.BodyPart, error) {
	nameVO, err := domain.NewBodyPartName(name)
	if err != nil {
		return nil, NewError(CodeValidation, err.Error(), err)
	}

	existing, err := s.requireBodyPart(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if existing.HasName(nameVO.String()) {
		return existing, nil
	}

	bodyPart, err := s.bodyParts.UpdateName(ctx, id, userID, nameVO.String())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBodyPartNotFound):
			return nil, NewError(CodeBodyPartNotFound, "body part not found", err)
		case errors.Is(err, store.ErrBodyPartExists):
			return nil, NewError(CodeBodyPartAlreadyExists, "body part already exists", err)
		}
		s.logger.Error("failed to rename body part",
			"error", err,
			"body_part_id", id)
		return nil, internalError("failed to rename body part", err)
	}

	return bodyPart, nil
}

// requireBodyPart loads a body part and re-checks ownership on the
// returned row before the caller mutates it.
func (s *BodyPartServiceImpl) requireBodyPart(ctx context.Context, userID string, id int64) (*domain.BodyPart, error) {
	bodyPart, err := s.bodyParts.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, store.ErrBodyPartNotFound) {
			return nil, NewError(CodeBodyPartNotFound, "body part not found", err)
		}
		s.logger.Error("failed to get body part",
			"error", err,
			"body_part_id", id)
		return nil, internalError("failed to get body part", err)
	}
	if !bodyPart.BelongsTo(userID) {
		return nil, NewError(CodeBodyPartNotFound, "body part not found", store.ErrBodyPartNotFound)
	}
	return bodyPart, nil
}

// DeleteBodyPart removes a body part and everything attached to it.
func (s *BodyPartServiceImpl) DeleteBodyPart(ctx context.Context, userID string, id int64) error {
	if _, err := s.requireBodyPart(ctx, userID, id); err != nil {
		return err
	}

	if err := s.bodyParts.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, store.ErrBodyPartNotFound) {
			return NewError(CodeBodyPartNotFound, "body part not found", err)
		}
		s.logger.Error("failed to delete body part",
			"error", err,
			"body_part_id", id)
		return internalError("failed to delete body part", err)
	}

	s.logger.Info("body part deleted",
		"user_id", userID,
		"body_part_id", id)
	return nil
}

// DeleteAllBodyParts clears the user's catalog.
func (s *BodyPartServiceImpl) DeleteAllBodyParts(ctx context.Context, userID string) error {
	if err := s.bodyParts.DeleteAll(ctx, userID); err != nil {
		s.logger.Error("failed to delete body parts",
			"error", err,
			"user_id", userID)
		return internalError("failed to delete body parts", err)
	}
	return nil
}
