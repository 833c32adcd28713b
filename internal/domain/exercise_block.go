package domain

import "errors"

// ErrInvalidExerciseBlockID is returned when a block ID is not positive.
var ErrInvalidExerciseBlockID = errors.New("exercise block ID must be a positive number")

// ExerciseBlock is the set of repetitions performed for one exercise
// within one workout session. A given exercise appears at most once per
// workout. Mutators return a new block; persistence is the caller's job.
type ExerciseBlock struct {
	ID         int64  `json:"id"`
	UserID     string `json:"user_id"`
	WorkoutID  int64  `json:"workout_id"`
	ExerciseID int64  `json:"exercise_id"`
	Sets       []Set  `json:"sets"`
}

// NewExerciseBlockFromStorage reconstructs an ExerciseBlock from a
// persisted row plus its sets, re-running all invariants.
func NewExerciseBlockFromStorage(
	id int64,
	userID string,
	workoutID, exerciseID int64,
	sets []Set,
) (*ExerciseBlock, error) {
	if id <= 0 {
		return nil, ErrInvalidExerciseBlockID
	}
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	return &ExerciseBlock{
		ID:         id,
		UserID:     userID,
		WorkoutID:  workoutID,
		ExerciseID: exerciseID,
		Sets:       sets,
	}, nil
}

// AddSet returns a new block with a set appended. The new set takes the
// next sequential set number: last+1, or 1 for an empty block. The set
// carries ID 0 until persisted.
func (b *ExerciseBlock) AddSet(userID string, weight float64, reps int) (*ExerciseBlock, error) {
	nextNumber := 1
	if len(b.Sets) > 0 {
		nextNumber = b.Sets[len(b.Sets)-1].SetNumber + 1
	}

	newSet, err := NewSet(0, userID, b.ID, nextNumber, weight, reps)
	if err != nil {
		return nil, err
	}

	sets := make([]Set, 0, len(b.Sets)+1)
	sets = append(sets, b.Sets...)
	sets = append(sets, newSet)

	return b.withSets(sets), nil
}

// UpdateSet returns a new block with the identified set's weight and
// reps replaced. Unknown set IDs leave the block unchanged.
func (b *ExerciseBlock) UpdateSet(setID int64, weight float64, reps int) (*ExerciseBlock, error) {
	sets := make([]Set, len(b.Sets))
	for i, s := range b.Sets {
		if s.ID == setID {
			updated, err := s.Update(weight, reps)
			if err != nil {
				return nil, err
			}
			sets[i] = updated
		} else {
			sets[i] = s
		}
	}

	return b.withSets(sets), nil
}

// RemoveSet returns a new block without the identified set. The
// remaining sets are renumbered sequentially from 1 in their original
// relative order, so set numbers never show gaps after a deletion and
// never depend on which numeric IDs happen to remain.
func (b *ExerciseBlock) RemoveSet(setID int64) *ExerciseBlock {
	sets := make([]Set, 0, len(b.Sets))
	for _, s := range b.Sets {
		if s.ID == setID {
			continue
		}
		s.SetNumber = len(sets) + 1
		sets = append(sets, s)
	}

	return b.withSets(sets)
}

// CalculateVolume returns the total volume (Σ weight × reps) over all
// sets in the block. Derived, never stored.
func (b *ExerciseBlock) CalculateVolume() float64 {
	var total float64
	for _, s := range b.Sets {
		total += s.Volume()
	}
	return total
}

// SetCount returns the number of sets in the block.
func (b *ExerciseBlock) SetCount() int {
	return len(b.Sets)
}

// BelongsTo reports whether the block is owned by the given user.
func (b *ExerciseBlock) BelongsTo(userID string) bool {
	return b.UserID == userID
}

// BelongsToWorkout reports whether the block belongs to the given workout.
func (b *ExerciseBlock) BelongsToWorkout(workoutID int64) bool {
	return b.WorkoutID == workoutID
}

func (b *ExerciseBlock) withSets(sets []Set) *ExerciseBlock {
	return &ExerciseBlock{
		ID:         b.ID,
		UserID:     b.UserID,
		WorkoutID:  b.WorkoutID,
		ExerciseID: b.ExerciseID,
		Sets:       sets,
	}
}
