package domain

import "errors"

// Common validation errors for Exercise
var (
	ErrInvalidExerciseID         = errors.New("exercise ID must be a positive number")
	ErrInvalidExerciseBodyPartID = errors.New("exercise body part ID must be a positive number")
)

// Exercise represents a named exercise owned by a user, attached to one
// of the user's body parts. Names are unique per user.
type Exercise struct {
	ID          int64  `json:"id"`
	UserID      string `json:"user_id"`
	name        ExerciseName
	Description string `json:"description,omitempty"`
	BodyPartID  int64  `json:"body_part_id"`
}

// NewExerciseFromStorage reconstructs an Exercise from a persisted row,
// re-running all invariants.
func NewExerciseFromStorage(
	id int64,
	userID, name, description string,
	bodyPartID int64,
) (*Exercise, error) {
	if id <= 0 {
		return nil, ErrInvalidExerciseID
	}
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if bodyPartID <= 0 {
		return nil, ErrInvalidExerciseBodyPartID
	}

	nameVO, err := NewExerciseName(name)
	if err != nil {
		return nil, err
	}

	return &Exercise{
		ID:          id,
		UserID:      userID,
		name:        nameVO,
		Description: description,
		BodyPartID:  bodyPartID,
	}, nil
}

// Name returns the exercise's name.
func (e *Exercise) Name() string {
	return e.name.String()
}

// BelongsTo reports whether the exercise is owned by the given user.
func (e *Exercise) BelongsTo(userID string) bool {
	return e.UserID == userID
}

// HasName reports whether the exercise's name matches.
func (e *Exercise) HasName(name string) bool {
	return e.name.String() == name
}

// BelongsToBodyPart reports whether the exercise is attached to the
// given body part.
func (e *Exercise) BelongsToBodyPart(bodyPartID int64) bool {
	return e.BodyPartID == bodyPartID
}
