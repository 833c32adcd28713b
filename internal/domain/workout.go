package domain

import (
	"errors"
	"time"
)

// WorkoutDateLayout is the calendar-date format workouts are keyed by.
const WorkoutDateLayout = "2006-01-02"

// Common validation errors for Workout
var (
	ErrInvalidWorkoutID      = errors.New("workout ID must be a positive number")
	ErrInvalidWorkoutDate    = errors.New("invalid workout date format")
	ErrWorkoutEndBeforeStart = errors.New("end time must be after start time")
	ErrWorkoutAlreadyEnded   = errors.New("workout is already ended")
)

// Workout represents one training session. A user has at most one
// workout per calendar date.
type Workout struct {
	ID        int64      `json:"id"`
	UserID    string     `json:"user_id"`
	Date      string     `json:"date"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}

// ValidateWorkoutDate checks that a date string is a valid YYYY-MM-DD
// calendar date.
func ValidateWorkoutDate(date string) error {
	if _, err := time.Parse(WorkoutDateLayout, date); err != nil {
		return ErrInvalidWorkoutDate
	}
	return nil
}

// NewWorkoutFromStorage reconstructs a Workout from a persisted row,
// re-running all invariants.
func NewWorkoutFromStorage(
	id int64,
	userID, date string,
	startTime time.Time,
	endTime *time.Time,
) (*Workout, error) {
	if id <= 0 {
		return nil, ErrInvalidWorkoutID
	}
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if err := ValidateWorkoutDate(date); err != nil {
		return nil, err
	}
	if endTime != nil && endTime.Before(startTime) {
		return nil, ErrWorkoutEndBeforeStart
	}

	return &Workout{
		ID:        id,
		UserID:    userID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// CanEnd reports whether the workout is still open.
func (w *Workout) CanEnd() bool {
	return w.EndTime == nil
}

// End returns a copy of the workout with the end time set to at.
// Returns an error if the workout is already ended.
func (w *Workout) End(at time.Time) (*Workout, error) {
	if !w.CanEnd() {
		return nil, ErrWorkoutAlreadyEnded
	}

	at = at.UTC()
	ended := *w
	ended.EndTime = &at
	return &ended, nil
}

// IsSameDate reports whether the workout falls on the given date.
func (w *Workout) IsSameDate(date string) bool {
	return w.Date == date
}

// BelongsTo reports whether the workout is owned by the given user.
func (w *Workout) BelongsTo(userID string) bool {
	return w.UserID == userID
}
