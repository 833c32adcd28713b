package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/repset/repset-api/internal/domain"
	"github.com/repset/repset-api/internal/store"
)

// ExerciseService provides operations on a user's exercise catalog.
type ExerciseService interface {
	// ListExercises returns all of the user's exercises.
	ListExercises(ctx context.Context, userID string) ([]*domain.Exercise, error)

	// ListExercisesByBodyParts returns the user's exercises attached to
	// any of the given body parts. A filter naming a body part the user
	// does not have fails rather than silently matching nothing.
	ListExercisesByBodyParts(ctx context.Context, userID string, bodyPartIDs []int64) ([]*domain.Exercise, error)

	// CreateExercise adds an exercise to the user's catalog. Creating
	// an exercise whose name already exists returns the existing row
	// rather than an error, so repeat submissions are harmless.
	CreateExercise(ctx context.Context, userID, name, description string, bodyPartID int64) (*domain.Exercise, error)

	// RenameExercise changes an exercise's name.
	RenameExercise(ctx context.Context, userID string, id int64, name string) (*domain.Exercise, error)

	// DeleteExercise removes an exercise and everything attached to it.
	DeleteExercise(ctx context.Context, userID string, id int64) error

	// DeleteAllExercises clears the user's catalog.
	DeleteAllExercises(ctx context.Context, userID string) error
}

// ExerciseServiceImpl implements the ExerciseService interface
type ExerciseServiceImpl struct {
	exercises store.ExerciseStore
	bodyParts store.BodyPartStore
	logger    *slog.Logger
}

// NewExerciseService creates a new ExerciseService
func NewExerciseService(
	exercises store.ExerciseStore,
	bodyParts store.BodyPartStore,
	logger *slog.Logger,
) ExerciseService {
	return &ExerciseServiceImpl{
		exercises: exercises,
		bodyParts: bodyParts,
		logger:    logger.With("component", "exercise_service"),
	}
}

// ListExercises returns all of the user's exercises.
func (s *ExerciseServiceImpl) ListExercises(ctx context.Context, userID string) ([]*domain.Exercise, error) {
	exercises, err := s.exercises.List(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list exercises",
			"error", err,
			"user_id", userID)
		return nil, internalError("failed to list exercises", err)
	}
	return exercises, nil
}

// ListExercisesByBodyParts returns the user's exercises attached to any
// of the given body parts.
func (s *ExerciseServiceImpl) ListExercisesByBodyParts(ctx context.Context, userID string, bodyPartIDs []int64) ([]*domain.Exercise, error) {
	for _, id := range bodyPartIDs {
		if _, err := s.bodyParts.GetByID(ctx, id, userID); err != nil {
			if errors.Is(err, store.ErrBodyPartNotFound) {
				return nil, NewError(CodeBodyPartNotFound, "body part not found", err)
			}
			s.logger.Error("failed to check body part existence",
				"error", err,
				"body_part_id", id)
			return nil, internalError("failed to list exercises", err)
		}
	}

	exercises, err := s.exercises.ListByBodyPartIDs(ctx, userID, bodyPartIDs)
	if err != nil {
		s.logger.Error("failed to list exercises by body parts",
			"error", err,
			"user_id", userID)
		return nil, internalError("failed to list exercises", err)
	}
	return exercises, nil
}

// CreateExercise adds an exercise to the user's catalog, returning the
// existing row when the name is already taken.
func (s *ExerciseServiceImpl) CreateExercise(ctx context.Context, userID, name, description string, bodyPartID int64) (*domain.Exercise, error) {
	nameVO, err := domain.NewExerciseName(name)
	if err != nil {
		return nil, NewError(CodeValidation, err.Error(), err)
	}

	existing, err := s.exercises.GetByName(ctx, userID, nameVO.String())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrExerciseNotFound) {
		s.logger.Error("failed to check exercise existence",
			"error", err,
			"user_id", userID)
		return nil, internalError("failed to create exercise", err)
	}

	bp, err := s.bodyParts.GetByID(ctx, bodyPartID, userID)
	if err != nil {
		if errors.Is(err, store.ErrBodyPartNotFound) {
			return nil, NewError(CodeBodyPartNotFound, "body part not found", err)
		}
		s.logger.Error("failed to check body part existence",
			"error", err,
			"body_part_id", bodyPartID)
		return nil, internalError("failed to create exercise", err)
	}
	if !bp.BelongsTo(userID) {
		return nil, NewError(CodeBodyPartNotFound, "body part not found", store.ErrBodyPartNotFound)
	}

	exercise, err := s.exercises.Create(ctx, userID, nameVO.String(), description, bodyPartID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrExerciseExists):
			// Lost the race to a concurrent insert; honor the
			// return-existing contract by reloading it.
			return s.exercises.GetByName(ctx, userID, nameVO.String())
		case errors.Is(err, store.ErrBodyPartNotFound):
			return nil, NewError(CodeBodyPartNotFound, "body part not found", err)
		}
		s.logger.Error("failed to create exercise",
			"error", err,
			"user_id", userID)
		return nil, internalError("failed to create exercise", err)
	}

	s.logger.Info("exercise created",
		"user_id", userID,
		"exercise_id", exercise.ID)
	return exercise, nil
}

// RenameExercise changes an exercise's name.
func (s *ExerciseServiceImpl) RenameExercise(ctx context.Context, userID string, id int64, name string) (*domain.Exercise, error) {
	nameVO, err := domain.NewExerciseName(name)
	if err != nil {
		return nil, NewError(CodeValidation, err.Error(), err)
	}

	existing, err := s.requireExercise(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if existing.HasName(nameVO.String()) {
		return existing, nil
	}

	exercise, err := s.exercises.UpdateName(ctx, id, userID, nameVO.String())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrExerciseNotFound):
			return nil, NewError(CodeExerciseNotFound, "exercise not found", err)
		case errors.Is(err, store.ErrExerciseExists):
			return nil, NewError(CodeExerciseAlreadyExists, "exercise already exists", err)
		}
		s.logger.Error("failed to rename exercise",
			"error", err,
			"exercise_id", id)
		return nil, internalError("failed to rename exercise", err)
	}

	return exercise, nil
}

// requireExercise loads an exercise and re-checks ownership on the
// returned row before the caller mutates it.
func (s *ExerciseServiceImpl) requireExercise(ctx context.Context, userID string, id int64) (*domain.Exercise, error) {
	exercise, err := s.exercises.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, store.ErrExerciseNotFound) {
			return nil, NewError(CodeExerciseNotFound, "exercise not found", err)
		}
		s.logger.Error("failed to get exercise",
			"error", err,
			"exercise_id", id)
		return nil, internalError("failed to get exercise", err)
	}
	if !exercise.BelongsTo(userID) {
		return nil, NewError(CodeExerciseNotFound, "exercise not found", store.ErrExerciseNotFound)
	}
	return exercise, nil
}

// DeleteExercise removes an exercise and everything attached to it.
func (s *ExerciseServiceImpl) DeleteExercise(ctx context.Context, userID string, id int64) error {
	if _, err := s.requireExercise(ctx, userID, id); err != nil {
		return err
	}

	if err := s.exercises.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, store.ErrExerciseNotFound) {
			return NewError(CodeExerciseNotFound, "exercise not found", err)
		}
		s.logger.Error("failed to delete exercise",
			"error", err,
			"exercise_id", id)
		return internalError("failed to delete exercise", err)
	}

	s.logger.Info("exercise deleted",
		"user_id", userID,
		"exercise_id", id)
	return nil
}

// DeleteAllExercises clears the user's catalog.
func (s *ExerciseServiceImpl) DeleteAllExercises(ctx context.Context, userID string) error {
	if err := s.exercises.DeleteAll(ctx, userID); err != nil {
		s.logger.Error("failed to delete exercises",
			"error", err,
			"user_id", userID)
		return internalError("failed to delete exercises", err)
	}
	return nil
}
