package domain

import "errors"

// Common validation errors for Set
var (
	ErrNegativeSetWeight = errors.New("weight must be greater than or equal to 0")
	ErrInvalidSetReps    = errors.New("reps must be greater than 0")
	ErrInvalidSetNumber  = errors.New("set number must be greater than 0")
)

// Set is a single performance of an exercise: a weight lifted for a rep
// count, ordered within its ExerciseBlock by SetNumber. Within one block
// the set numbers always form a contiguous 1..N sequence.
type Set struct {
	ID              int64   `json:"id"`
	UserID          string  `json:"user_id"`
	ExerciseBlockID int64   `json:"exercise_block_id"`
	SetNumber       int     `json:"set_number"`
	Weight          float64 `json:"weight"`
	Reps            int     `json:"reps"`
}

// NewSet creates a Set, validating weight, reps and set number.
// An ID of 0 marks a set that has not been persisted yet.
func NewSet(id int64, userID string, exerciseBlockID int64, setNumber int, weight float64, reps int) (Set, error) {
	if weight < 0 {
		return Set{}, ErrNegativeSetWeight
	}
	if reps <= 0 {
		return Set{}, ErrInvalidSetReps
	}
	if setNumber <= 0 {
		return Set{}, ErrInvalidSetNumber
	}

	return Set{
		ID:              id,
		UserID:          userID,
		ExerciseBlockID: exerciseBlockID,
		SetNumber:       setNumber,
		Weight:          weight,
		Reps:            reps,
	}, nil
}

// NewSetFromStorage reconstructs a Set from a persisted row,
// re-running all invariants.
func NewSetFromStorage(id int64, userID string, exerciseBlockID int64, setNumber int, weight float64, reps int) (Set, error) {
	if userID == "" {
		return Set{}, ErrEmptyUserID
	}
	return NewSet(id, userID, exerciseBlockID, setNumber, weight, reps)
}

// Volume returns weight × reps for this set.
func (s Set) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// Update returns a copy of the set with new weight and reps,
// re-validated.
func (s Set) Update(weight float64, reps int) (Set, error) {
	return NewSet(s.ID, s.UserID, s.ExerciseBlockID, s.SetNumber, weight, reps)
}

// BelongsTo reports whether the set is owned by the given user.
func (s Set) BelongsTo(userID string) bool {
	return s.UserID == userID
}

// BelongsToBlock reports whether the set belongs to the given block.
func (s Set) BelongsToBlock(exerciseBlockID int64) bool {
	return s.ExerciseBlockID == exerciseBlockID
}
