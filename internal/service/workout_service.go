package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/repset/repset-api/internal/domain"
	"github.com/repset/repset-api/internal/store"
)

// SetInput carries the weight/reps pair for one set of an exercise block.
type SetInput struct {
	Weight float64
	Reps   int
}

// BlockFilter narrows ListExerciseBlocks to one exercise or to the
// exercises under one body part. Empty fields match everything.
type BlockFilter struct {
	ExerciseName string
	BodyPartName string
}

// WorkoutService provides operations on workouts, their body part
// associations, exercise blocks and sets. Workouts are addressed by
// calendar date; exercises and body parts by name.
type WorkoutService interface {
	// ListWorkouts returns all of the user's workouts.
	ListWorkouts(ctx context.Context, userID string) ([]*domain.Workout, error)

	// GetWorkoutByDate retrieves the user's workout for a calendar date.
	GetWorkoutByDate(ctx context.Context, userID, date string) (*domain.Workout, error)

	// CreateWorkout starts a workout for a date. At most one workout
	// exists per user and date.
	CreateWorkout(ctx context.Context, userID, date string) (*domain.Workout, error)

	// CreateOrGetWorkout starts a workout for a date, or returns the
	// existing one. The boolean reports whether a workout was created.
	CreateOrGetWorkout(ctx context.Context, userID, date string) (*domain.Workout, bool, error)

	// EndWorkout records the end time of the workout on the given date.
	EndWorkout(ctx context.Context, userID, date string) (*domain.Workout, error)

	// AddBodyPartsToWorkout associates the named body parts with the
	// workout on the given date. Unknown names are skipped; the call
	// fails only when none resolve. Already-associated body parts are
	// no-ops. Returns the workout and its body parts after the change.
	AddBodyPartsToWorkout(ctx context.Context, userID, date string, names []string) (*domain.Workout, []*domain.BodyPart, error)

	// RemoveBodyPartsFromWorkout detaches the named body parts from the
	// workout on the given date, deleting the workout's exercise blocks
	// for those body parts' exercises first so no orphaned blocks
	// remain. Unknown names are skipped; the call fails only when none
	// resolve. Returns the workout and its body parts after the change.
	RemoveBodyPartsFromWorkout(ctx context.Context, userID, date string, names []string) (*domain.Workout, []*domain.BodyPart, error)

	// ListWorkoutBodyParts returns the body parts associated with the
	// workout on the given date.
	ListWorkoutBodyParts(ctx context.Context, userID, date string) ([]*domain.BodyPart, error)

	// DeleteWorkout removes the user's workout for a date.
	DeleteWorkout(ctx context.Context, userID, date string) error

	// DeleteAllWorkouts removes every workout owned by the user.
	DeleteAllWorkouts(ctx context.Context, userID string) error

	// ListExerciseBlocks returns the blocks of the workout on the given
	// date with their sets loaded, optionally filtered.
	ListExerciseBlocks(ctx context.Context, userID, date string, filter BlockFilter) ([]*domain.ExerciseBlock, error)

	// CreateExerciseBlock adds sets for the named exercise to the
	// workout on the given date, creating the block if the exercise has
	// none there yet. New sets are numbered after any existing ones.
	// The boolean reports whether a block was created.
	CreateExerciseBlock(ctx context.Context, userID, date, exerciseName string, sets []SetInput) (*domain.ExerciseBlock, bool, error)

	// UpdateExerciseBlockSets reconciles the block's sets with the given
	// input. Each input is matched to an existing set by rep count: on
	// a match the weight is updated in place, otherwise a new set is
	// appended.
	UpdateExerciseBlockSets(ctx context.Context, userID, date, exerciseName string, sets []SetInput) (*domain.ExerciseBlock, error)

	// DeleteExerciseBlock removes the named exercise's block from the
	// workout on the given date along with its sets.
	DeleteExerciseBlock(ctx context.Context, userID, date, exerciseName string) error

	// DeleteAllExerciseBlocks removes every block owned by the user.
	DeleteAllExerciseBlocks(ctx context.Context, userID string) error

	// GetBlockSets returns the named exercise's sets for the workout on
	// the given date, in set-number order.
	GetBlockSets(ctx context.Context, userID, date, exerciseName string) ([]domain.Set, error)

	// UpdateSet rewrites a set's weight and reps.
	UpdateSet(ctx context.Context, userID string, setID int64, weight float64, reps int) (domain.Set, error)

	// DeleteSet removes a set and renumbers the block's remaining sets
	// to a contiguous 1..N sequence preserving relative order.
	DeleteSet(ctx context.Context, userID string, setID int64) error
}

// WorkoutServiceImpl implements the WorkoutService interface
type WorkoutServiceImpl struct {
	workouts  store.WorkoutStore
	bodyParts store.BodyPartStore
	exercises store.ExerciseStore
	blocks    store.ExerciseBlockStore
	sets      store.SetStore
	runTx     store.TxRunner
	logger    *slog.Logger
	timeFunc  func() time.Time // Injectable for testing
}

// NewWorkoutService creates a new WorkoutService
func NewWorkoutService(
	workouts store.WorkoutStore,
	bodyParts store.BodyPartStore,
	exercises store.ExerciseStore,
	blocks store.ExerciseBlockStore,
	sets store.SetStore,
	runTx store.TxRunner,
	logger *slog.Logger,
) *WorkoutServiceImpl {
	return &WorkoutServiceImpl{
		workouts:  workouts,
		bodyParts: bodyParts,
		exercises: exercises,
		blocks:    blocks,
		sets:      sets,
		runTx:     runTx,
		logger:    logger.With("component", "workout_service"),
		timeFunc:  time.Now,
	}
}

var _ WorkoutService = (*WorkoutServiceImpl)(nil)

// ListWorkouts returns all of the user's workouts.
func (s *WorkoutServiceImpl) ListWorkouts(ctx context.Context, userID string) ([]*domain.Workout, error) {
	workouts, err := s.workouts.List(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list workouts",
			"error", err,
			"user_id", userID)
		return nil, internalError("failed to list workouts", err)
	}
	return workouts, nil
}

// GetWorkoutByDate retrieves the user's workout for a calendar date.
func (s *WorkoutServiceImpl) GetWorkoutByDate(ctx context.Context, userID, date string) (*domain.Workout, error) {
	if err := domain.ValidateWorkoutDate(date); err != nil {
		return nil, NewError(CodeValidation, err.Error(), err)
	}

	workout, err := s.workouts.GetByDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, store.ErrWorkoutNotFound) {
			return nil, NewError(CodeWorkoutNotFound, "workout not found", err)
		}
		s.logger.Error("failed to get workout",
			"error", err,
			"user_id", userID,
			"date", date)
		return nil, internalError("failed to get workout", err)
	}
	// Ownership re-checked on the returned row, independent of the
	// query's WHERE clause.
	if !workout.BelongsTo(userID) {
		return nil, NewError(CodeWorkoutNotFound, "workout not found", store.ErrWorkoutNotFound)
	}
	return workout, nil
}

// CreateWorkout starts a workout for a date.
func (s *WorkoutServiceImpl) CreateWorkout(ctx context.Context, userID, date string) (*domain.Workout, error) {
	if err := domain.ValidateWorkoutDate(date); err != nil {
		return nil, NewError(CodeValidation, err.Error(), err)
	}

	workout, err := s.workouts.Create(ctx, userID, date, s.timeFunc().UTC())
	if err != nil {
		if errors.Is(err, store.ErrWorkoutExists) {
			return nil, NewError(CodeWorkoutAlreadyExists, "workout already exists for this date", err)
		}
		s.logger.Error("failed to create workout",
			"error", err,
			"user_id", userID,
			"date", date)
		return nil, internalError("failed to create workout", err)
	}

	s.logger.Info("workout created",
		"user_id", userID,
		"workout_id", workout.ID,
		"date", date)
	return workout, nil
}

// CreateOrGetWorkout starts a workout for a date, or returns the
// existing one.
func (s *WorkoutServiceImpl) CreateOrGetWorkout(ctx context.Context, userID, date string) (*domain.Workout, bool, error) {
	if err := domain.ValidateWorkoutDate(date); err != nil {
		return nil, false, NewError(CodeValidation, err.Error(), err)
	}

	existing, err := s.workouts.GetByDate(ctx, userID, date)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrWorkoutNotFound) {
		s.logger.Error("failed to check workout existence",
			"error", err,
			"user_id", userID,
			"date", date)
		return nil, false, internalError("failed to get workout", err)
	}

	workout, err := s.workouts.Create(ctx, userID, date, s.timeFunc().UTC())
	if err != nil {
		if errors.Is(err, store.ErrWorkoutExists) {
			// Lost the race to a concurrent create; return that row.
			workout, err = s.workouts.GetByDate(ctx, userID, date)
			if err != nil {
				return nil, false, internalError("failed to get workout", err)
			}
			return workout, false, nil
		}
		s.logger.Error("failed to create workout",
			"error", err,
			"user_id", userID,
			"date", date)
		return nil, false, internalError("failed to create workout", err)
	}

	s.logger.Info("workout created",
		"user_id", userID,
		"workout_id", workout.ID,
		"date", date)
	return workout, true, nil
}

// EndWorkout records the end time of the workout on the given date.
func (s *WorkoutServiceImpl) EndWorkout(ctx context.Context, userID, date string) (*domain.Workout, error) {
	workout, err := s.GetWorkoutByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	ended, err := workout.End(s.timeFunc().UTC())
	if err != nil {
		return nil, NewError(CodeValidation, err.Error(), err)
	}

	updated, err := s.workouts.SetEndTime(ctx, workout.ID, userID, *ended.EndTime)
	if err != nil {
		if errors.Is(err, store.ErrWorkoutNotFound) {
			return nil, NewError(CodeWorkoutNotFound, "workout not found", err)
		}
		s.logger.Error("failed to end workout",
			"error", err,
			"workout_id", workout.ID)
		return nil, internalError("failed to end workout", err)
	}

	s.logger.Info("workout ended",
		"user_id", userID,
		"workout_id", workout.ID)
	return updated, nil
}

// resolveBodyParts maps body part names to rows, skipping names the
// user does not have. Fails only when no name resolves.
func (s *WorkoutServiceImpl) resolveBodyParts(ctx context.Context, userID string, names []string) ([]*domain.BodyPart, error) {
	resolved := make([]*domain.BodyPart, 0, len(names))
	for _, name := range names {
		bp, err := s.bodyParts.GetByName(ctx, userID, name)
		if err != nil {
			if errors.Is(err, store.ErrBodyPartNotFound) {
				continue
			}
			s.logger.Error("failed to resolve body part",
				"error", err,
				"user_id", userID)
			return nil, internalError("failed to resolve body parts", err)
		}
		// A row the user does not own counts as an unknown name.
		if !bp.BelongsTo(userID) {
			continue
		}
		resolved = append(resolved, bp)
	}
	if len(resolved) == 0 {
		return nil, NewError(CodeBodyPartNotFound, "no matching body parts found", store.ErrBodyPartNotFound)
	}
	return resolved, nil
}

// requireExerciseByName loads an exercise by name with ownership
// enforced.
func (s *WorkoutServiceImpl) requireExerciseByName(ctx context.Context, userID, name string) (*domain.Exercise, error) {
	exercise, err := s.exercises.GetByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, store.ErrExerciseNotFound) {
			return nil, NewError(CodeExerciseNotFound, "exercise not found", err)
		}
		s.logger.Error("failed to get exercise",
			"error", err,
			"user_id", userID)
		return nil, internalError("failed to get exercise", err)
	}
	if !exercise.BelongsTo(userID) {
		return nil, NewError(CodeExerciseNotFound, "exercise not found", store.ErrExerciseNotFound)
	}
	return exercise, nil
}

// workoutBodyParts returns the given workout together with its current
// body part associations.
func (s *WorkoutServiceImpl) workoutBodyParts(ctx context.Context, workout *domain.Workout) (*domain.Workout, []*domain.BodyPart, error) {
	bodyParts, err := s.workouts.ListBodyParts(ctx, workout.ID)
	if err != nil {
		s.logger.Error("failed to list workout body parts",
			"error", err,
			"workout_id", workout.ID)
		return nil, nil, internalError("failed to list body parts", err)
	}
	return workout, bodyParts, nil
}

// AddBodyPartsToWorkout associates the named body parts with the
// workout on the given date.
func (s *WorkoutServiceImpl) AddBodyPartsToWorkout(ctx context.Context, userID, date string, names []string) (*domain.Workout, []*domain.BodyPart, error) {
	workout, err := s.GetWorkoutByDate(ctx, userID, date)
	if err != nil {
		return nil, nil, err
	}

	resolved, err := s.resolveBodyParts(ctx, userID, names)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]int64, 0, len(resolved))
	for _, bp := range resolved {
		ids = append(ids, bp.ID)
	}

	// The store insert tolerates already-associated rows, so retrying
	// the same names is a no-op.
	if err := s.workouts.AddBodyParts(ctx, workout.ID, ids); err != nil {
		s.logger.Error("failed to add body parts to workout",
			"error", err,
			"workout_id", workout.ID)
		return nil, nil, internalError("failed to add body parts", err)
	}

	s.logger.Info("body parts added to workout",
		"workout_id", workout.ID,
		"count", len(ids))
	return s.workoutBodyParts(ctx, workout)
}

// RemoveBodyPartsFromWorkout detaches the named body parts from the
// workout on the given date. The workout's blocks for those body parts'
// exercises go first, then the association rows, all inside one
// transaction so a failure cannot leave blocks without their body part.
func (s *WorkoutServiceImpl) RemoveBodyPartsFromWorkout(ctx context.Context, userID, date string, names []string) (*domain.Workout, []*domain.BodyPart, error) {
	workout, err := s.GetWorkoutByDate(ctx, userID, date)
	if err != nil {
		return nil, nil, err
	}

	resolved, err := s.resolveBodyParts(ctx, userID, names)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]int64, 0, len(resolved))
	for _, bp := range resolved {
		ids = append(ids, bp.ID)
	}

	err = s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		exercises, err := s.exercises.WithTx(tx).ListByBodyPartIDs(ctx, userID, ids)
		if err != nil {
			return err
		}

		exerciseIDs := make([]int64, 0, len(exercises))
		for _, ex := range exercises {
			exerciseIDs = append(exerciseIDs, ex.ID)
		}

		txBlocks := s.blocks.WithTx(tx)
		affected, err := txBlocks.ListByWorkoutAndExercises(ctx, userID, workout.ID, exerciseIDs)
		if err != nil {
			return err
		}
		for _, block := range affected {
			if err := txBlocks.Delete(ctx, block.ID, userID); err != nil {
				return err
			}
		}

		return s.workouts.WithTx(tx).RemoveBodyParts(ctx, workout.ID, ids)
	})
	if err != nil {
		s.logger.Error("failed to remove body parts from workout",
			"error", err,
			"workout_id", workout.ID)
		return nil, nil, internalError("failed to remove body parts", err)
	}

	s.logger.Info("body parts removed from workout",
		"workout_id", workout.ID,
		"count", len(ids))
	return s.workoutBodyParts(ctx, workout)
}

// ListWorkoutBodyParts returns the body parts associated with the
// workout on the given date.
func (s *WorkoutServiceImpl) ListWorkoutBodyParts(ctx context.Context, userID, date string) ([]*domain.BodyPart, error) {
	workout, err := s.GetWorkoutByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	_, bodyParts, err := s.workoutBodyParts(ctx, workout)
	return bodyParts, err
}

// DeleteWorkout removes the user's workout for a date.
func (s *WorkoutServiceImpl) DeleteWorkout(ctx context.Context, userID, date string) error {
	if err := domain.ValidateWorkoutDate(date); err != nil {
		return NewError(CodeValidation, err.Error(), err)
	}

	if err := s.workouts.DeleteByDate(ctx, userID, date); err != nil {
		if errors.Is(err, store.ErrWorkoutNotFound) {
			return NewError(CodeWorkoutNotFound, "workout not found", err)
		}
		s.logger.Error("failed to delete workout",
			"error", err,
			"user_id", userID,
			"date", date)
		return internalError("failed to delete workout", err)
	}

	s.logger.Info("workout deleted",
		"user_id", userID,
		"date", date)
	return nil
}

// DeleteAllWorkouts removes every workout owned by the user.
func (s *WorkoutServiceImpl) DeleteAllWorkouts(ctx context.Context, userID string) error {
	if err := s.workouts.DeleteAll(ctx, userID); err != nil {
		s.logger.Error("failed to delete workouts",
			"error", err,
			"user_id", userID)
		return internalError("failed to delete workouts", err)
	}
	return nil
}

// ListExerciseBlocks returns the blocks of the workout on the given
// date, optionally narrowed to one exercise or one body part.
func (s *WorkoutServiceImpl) ListExerciseBlocks(ctx context.Context, userID, date string, filter BlockFilter) ([]*domain.ExerciseBlock, error) {
	workout, err := s.GetWorkoutByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	blocks, err := s.blocks.ListByWorkout(ctx, userID, workout.ID)
	if err != nil {
		s.logger.Error("failed to list exercise blocks",
			"error", err,
			"workout_id", workout.ID)
		return nil, internalError("failed to list exercise blocks", err)
	}

	if filter.ExerciseName != "" {
		exercise, err := s.requireExerciseByName(ctx, userID, filter.ExerciseName)
		if err != nil {
			return nil, err
		}
		blocks = filterBlocks(blocks, func(b *domain.ExerciseBlock) bool {
			return b.ExerciseID == exercise.ID
		})
	}

	if filter.BodyPartName != "" {
		bp, err := s.bodyParts.GetByName(ctx, userID, filter.BodyPartName)
		if err != nil {
			if errors.Is(err, store.ErrBodyPartNotFound) {
				return nil, NewError(CodeBodyPartNotFound, "body part not found", err)
			}
			return nil, internalError("failed to get body part", err)
		}
		exercises, err := s.exercises.ListByBodyPartIDs(ctx, userID, []int64{bp.ID})
		if err != nil {
			return nil, internalError("failed to list exercises", err)
		}
		under := make(map[int64]bool, len(exercises))
		for _, ex := range exercises {
			if ex.BelongsToBodyPart(bp.ID) {
				under[ex.ID] = true
			}
		}
		blocks = filterBlocks(blocks, func(b *domain.ExerciseBlock) bool {
			return under[b.ExerciseID]
		})
	}

	return blocks, nil
}

func filterBlocks(blocks []*domain.ExerciseBlock, keep func(*domain.ExerciseBlock) bool) []*domain.ExerciseBlock {
	out := blocks[:0]
	for _, b := range blocks {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// CreateExerciseBlock adds sets for the named exercise to the workout
// on the given date, creating the block when the exercise has none
// there yet.
func (s *WorkoutServiceImpl) CreateExerciseBlock(ctx context.Context, userID, date, exerciseName string, sets []SetInput) (*domain.ExerciseBlock, bool, error) {
	workout, err := s.GetWorkoutByDate(ctx, userID, date)
	if err != nil {
		return nil, false, err
	}
	exercise, err := s.requireExerciseByName(ctx, userID, exerciseName)
	if err != nil {
		return nil, false, err
	}

	for _, input := range sets {
		if _, err := domain.NewSet(0, userID, 0, 1, input.Weight, input.Reps); err != nil {
			return nil, false, NewError(CodeValidation, err.Error(), err)
		}
	}

	var (
		block   *domain.ExerciseBlock
		created bool
	)
	appendSets := func(ctx context.Context, tx *sql.Tx) error {
		txBlocks := s.blocks.WithTx(tx)

		existing, err := txBlocks.GetByWorkoutAndExercise(ctx, userID, workout.ID, exercise.ID)
		switch {
		case err == nil:
			block, created = existing, false
		case errors.Is(err, store.ErrExerciseBlockNotFound):
			block, err = txBlocks.Create(ctx, userID, workout.ID, exercise.ID)
			if err != nil {
				return err
			}
			created = true
		default:
			return err
		}

		txSets := s.sets.WithTx(tx)
		nextNumber := len(block.Sets) + 1
		for i, input := range sets {
			set, err := domain.NewSet(0, userID, block.ID, nextNumber+i, input.Weight, input.Reps)
			if err != nil {
				return err
			}
			if _, err := txSets.Create(ctx, set); err != nil {
				return err
			}
		}

		block, err = txBlocks.GetByWorkoutAndExercise(ctx, userID, workout.ID, exercise.ID)
		return err
	}

	err = s.runTx(ctx, appendSets)
	if errors.Is(err, store.ErrExerciseBlockExists) {
		// Lost the create race; the block exists now, so a second pass
		// appends to it.
		err = s.runTx(ctx, appendSets)
	}
	if err != nil {
		s.logger.Error("failed to create exercise block",
			"error", err,
			"workout_id", workout.ID,
			"exercise_id", exercise.ID)
		return nil, false, internalError("failed to create exercise block", err)
	}

	s.logger.Info("exercise block updated",
		"workout_id", workout.ID,
		"exercise_id", exercise.ID,
		"created", created,
		"sets", len(sets))
	return block, created, nil
}

// UpdateExerciseBlockSets reconciles a block's sets with the given
// input, matching by rep count.
func (s *WorkoutServiceImpl) UpdateExerciseBlockSets(ctx context.Context, userID, date, exerciseName string, sets []SetInput) (*domain.ExerciseBlock, error) {
	block, workout, exercise, err := s.requireBlock(ctx, userID, date, exerciseName)
	if err != nil {
		return nil, err
	}

	for _, input := range sets {
		if _, err := domain.NewSet(0, userID, block.ID, 1, input.Weight, input.Reps); err != nil {
			return nil, NewError(CodeValidation, err.Error(), err)
		}
	}

	err = s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txSets := s.sets.WithTx(tx)
		nextNumber := len(block.Sets) + 1

		for _, input := range sets {
			existing, err := txSets.GetByBlockAndReps(ctx, block.ID, input.Reps)
			if err == nil && !existing.BelongsToBlock(block.ID) {
				// A stray row from another block counts as a miss.
				err = store.ErrSetNotFound
			}
			switch {
			case err == nil:
				if _, err := txSets.Update(ctx, existing.ID, input.Weight, input.Reps); err != nil {
					return err
				}
			case errors.Is(err, store.ErrSetNotFound):
				set, err := domain.NewSet(0, userID, block.ID, nextNumber, input.Weight, input.Reps)
				if err != nil {
					return err
				}
				if _, err := txSets.Create(ctx, set); err != nil {
					return err
				}
				nextNumber++
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to update exercise block sets",
			"error", err,
			"exercise_block_id", block.ID)
		return nil, internalError("failed to update sets", err)
	}

	updated, err := s.blocks.GetByWorkoutAndExercise(ctx, userID, workout.ID, exercise.ID)
	if err != nil {
		return nil, internalError("failed to reload exercise block", err)
	}
	return updated, nil
}

// requireBlock resolves date and exercise name down to the block.
func (s *WorkoutServiceImpl) requireBlock(ctx context.Context, userID, date, exerciseName string) (*domain.ExerciseBlock, *domain.Workout, *domain.Exercise, error) {
	workout, err := s.GetWorkoutByDate(ctx, userID, date)
	if err != nil {
		return nil, nil, nil, err
	}
	exercise, err := s.requireExerciseByName(ctx, userID, exerciseName)
	if err != nil {
		return nil, nil, nil, err
	}

	block, err := s.blocks.GetByWorkoutAndExercise(ctx, userID, workout.ID, exercise.ID)
	if err != nil {
		if errors.Is(err, store.ErrExerciseBlockNotFound) {
			return nil, nil, nil, NewError(CodeExerciseBlockNotFound, "exercise block not found", err)
		}
		s.logger.Error("failed to get exercise block",
			"error", err,
			"workout_id", workout.ID,
			"exercise_id", exercise.ID)
		return nil, nil, nil, internalError("failed to get exercise block", err)
	}
	if !block.BelongsTo(userID) || !block.BelongsToWorkout(workout.ID) {
		return nil, nil, nil, NewError(CodeExerciseBlockNotFound, "exercise block not found", store.ErrExerciseBlockNotFound)
	}
	return block, workout, exercise, nil
}

// DeleteExerciseBlock removes the named exercise's block from the
// workout on the given date.
func (s *WorkoutServiceImpl) DeleteExerciseBlock(ctx context.Context, userID, date, exerciseName string) error {
	workout, err := s.GetWorkoutByDate(ctx, userID, date)
	if err != nil {
		return err
	}
	exercise, err := s.requireExerciseByName(ctx, userID, exerciseName)
	if err != nil {
		return err
	}

	if err := s.blocks.DeleteByWorkoutAndExercise(ctx, userID, workout.ID, exercise.ID); err != nil {
		if errors.Is(err, store.ErrExerciseBlockNotFound) {
			return NewError(CodeExerciseBlockNotFound, "exercise block not found", err)
		}
		s.logger.Error("failed to delete exercise block",
			"error", err,
			"workout_id", workout.ID,
			"exercise_id", exercise.ID)
		return internalError("failed to delete exercise block", err)
	}

	s.logger.Info("exercise block deleted",
		"workout_id", workout.ID,
		"exercise_id", exercise.ID)
	return nil
}

// DeleteAllExerciseBlocks removes every block owned by the user.
func (s *WorkoutServiceImpl) DeleteAllExerciseBlocks(ctx context.Context, userID string) error {
	if err := s.blocks.DeleteAll(ctx, userID); err != nil {
		s.logger.Error("failed to delete exercise blocks",
			"error", err,
			"user_id", userID)
		return internalError("failed to delete exercise blocks", err)
	}
	return nil
}

// GetBlockSets returns the named exercise's sets for the workout on the
// given date, in set-number order.
func (s *WorkoutServiceImpl) GetBlockSets(ctx context.Context, userID, date, exerciseName string) ([]domain.Set, error) {
	block, _, _, err := s.requireBlock(ctx, userID, date, exerciseName)
	if err != nil {
		return nil, err
	}
	return block.Sets, nil
}

// UpdateSet rewrites a set's weight and reps.
func (s *WorkoutServiceImpl) UpdateSet(ctx context.Context, userID string, setID int64, weight float64, reps int) (domain.Set, error) {
	existing, err := s.sets.GetByID(ctx, setID, userID)
	if err != nil {
		if errors.Is(err, store.ErrSetNotFound) {
			return domain.Set{}, NewError(CodeSetNotFound, "set not found", err)
		}
		s.logger.Error("failed to get set",
			"error", err,
			"set_id", setID)
		return domain.Set{}, internalError("failed to get set", err)
	}
	if !existing.BelongsTo(userID) {
		return domain.Set{}, NewError(CodeSetNotFound, "set not found", store.ErrSetNotFound)
	}

	if _, err := existing.Update(weight, reps); err != nil {
		return domain.Set{}, NewError(CodeValidation, err.Error(), err)
	}

	updated, err := s.sets.Update(ctx, setID, weight, reps)
	if err != nil {
		if errors.Is(err, store.ErrSetNotFound) {
			return domain.Set{}, NewError(CodeSetNotFound, "set not found", err)
		}
		s.logger.Error("failed to update set",
			"error", err,
			"set_id", setID)
		return domain.Set{}, internalError("failed to update set", err)
	}
	return updated, nil
}

// DeleteSet removes a set and renumbers the block's remaining sets to
// a contiguous 1..N sequence, all inside one transaction.
func (s *WorkoutServiceImpl) DeleteSet(ctx context.Context, userID string, setID int64) error {
	set, err := s.sets.GetByID(ctx, setID, userID)
	if err != nil {
		if errors.Is(err, store.ErrSetNotFound) {
			return NewError(CodeSetNotFound, "set not found", err)
		}
		s.logger.Error("failed to get set",
			"error", err,
			"set_id", setID)
		return internalError("failed to get set", err)
	}
	if !set.BelongsTo(userID) {
		return NewError(CodeSetNotFound, "set not found", store.ErrSetNotFound)
	}

	err = s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txSets := s.sets.WithTx(tx)

		if err := txSets.Delete(ctx, setID); err != nil {
			return err
		}

		remaining, err := txSets.ListByBlock(ctx, set.ExerciseBlockID)
		if err != nil {
			return err
		}

		// ListByBlock orders by set number, so rewriting positions in
		// slice order keeps the relative order intact.
		for i, rest := range remaining {
			if rest.SetNumber == i+1 {
				continue
			}
			if err := txSets.UpdateNumber(ctx, rest.ID, i+1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrSetNotFound) {
			return NewError(CodeSetNotFound, "set not found", err)
		}
		s.logger.Error("failed to delete set",
			"error", err,
			"set_id", setID)
		return internalError("failed to delete set", err)
	}

	s.logger.Info("set deleted",
		"set_id", setID,
		"exercise_block_id", set.ExerciseBlockID)
	return nil
}
