package api

import (
	"time"

	"github.com/repset/repset-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required,min=1,max=64"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID string `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ChangePasswordRequest defines the payload for the password change
// endpoint.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=72"`
}

// UserResponse is the public representation of an account.
type UserResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Username      string `json:"username"`
	EmailVerified bool   `json:"email_verified"`
	Image         string `json:"image,omitempty"`
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Email:         user.Email(),
		Username:      user.Username(),
		EmailVerified: user.IsEmailVerified(),
		Image:         user.Image,
	}
}

// CreateBodyPartRequest defines the payload for creating a body part.
type CreateBodyPartRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// RenameBodyPartRequest defines the payload for renaming a body part.
type RenameBodyPartRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// BodyPartResponse is the public representation of a body part.
type BodyPartResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newBodyPartResponse(bp *domain.BodyPart) BodyPartResponse {
	return BodyPartResponse{ID: bp.ID, Name: bp.Name()}
}

func newBodyPartListResponse(bodyParts []*domain.BodyPart) []BodyPartResponse {
	out := make([]BodyPartResponse, 0, len(bodyParts))
	for _, bp := range bodyParts {
		out = append(out, newBodyPartResponse(bp))
	}
	return out
}

// CreateExerciseRequest defines the payload for creating an exercise.
type CreateExerciseRequest struct {
	Name        string `json:"name"         validate:"required,max=100"`
	Description string `json:"description"  validate:"max=500"`
	BodyPartID  int64  `json:"body_part_id" validate:"required,gt=0"`
}

// RenameExerciseRequest defines the payload for renaming an exercise.
type RenameExerciseRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// ExerciseResponse is the public representation of an exercise.
type ExerciseResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BodyPartID  int64  `json:"body_part_id"`
}

func newExerciseResponse(ex *domain.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:          ex.ID,
		Name:        ex.Name(),
		Description: ex.Description,
		BodyPartID:  ex.BodyPartID,
	}
}

func newExerciseListResponse(exercises []*domain.Exercise) []ExerciseResponse {
	out := make([]ExerciseResponse, 0, len(exercises))
	for _, ex := range exercises {
		out = append(out, newExerciseResponse(ex))
	}
	return out
}

// CreateWorkoutRequest defines the payload for starting a workout.
type CreateWorkoutRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// WorkoutResponse is the public representation of a workout.
type WorkoutResponse struct {
	ID        int64      `json:"id"`
	Date      string     `json:"date"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	// BodyParts lists the workout's body part associations on
	// endpoints that return the workout with them.
	BodyParts []BodyPartResponse `json:"body_parts,omitempty"`

	// Created reports whether the create-or-get endpoint started a new
	// workout. Omitted everywhere else.
	Created *bool `json:"created,omitempty"`
}

func newWorkoutResponse(w *domain.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:        w.ID,
		Date:      w.Date,
		StartTime: w.StartTime,
		EndTime:   w.EndTime,
	}
}

func newWorkoutListResponse(workouts []*domain.Workout) []WorkoutResponse {
	out := make([]WorkoutResponse, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, newWorkoutResponse(w))
	}
	return out
}

func newWorkoutWithBodyPartsResponse(w *domain.Workout, bodyParts []*domain.BodyPart) WorkoutResponse {
	resp := newWorkoutResponse(w)
	resp.BodyParts = newBodyPartListResponse(bodyParts)
	return resp
}

// WorkoutBodyPartsRequest carries the body part names to attach to or
// detach from a workout.
type WorkoutBodyPartsRequest struct {
	Names []string `json:"names" validate:"required,min=1,dive,required,max=50"`
}

// SetPayload carries one weight/reps pair.
type SetPayload struct {
	Weight float64 `json:"weight" validate:"gte=0"`
	Reps   int     `json:"reps"   validate:"required,gt=0"`
}

// CreateBlockRequest defines the payload for adding sets of a named
// exercise to a workout.
type CreateBlockRequest struct {
	ExerciseName string       `json:"exercise_name" validate:"required,max=100"`
	Sets         []SetPayload `json:"sets"          validate:"dive"`
}

// UpdateBlockSetsRequest defines the payload for reconciling a block's
// sets.
type UpdateBlockSetsRequest struct {
	Sets []SetPayload `json:"sets" validate:"required,min=1,dive"`
}

// UpdateSetRequest defines the payload for rewriting one set.
type UpdateSetRequest struct {
	Weight float64 `json:"weight" validate:"gte=0"`
	Reps   int     `json:"reps"   validate:"required,gt=0"`
}

// SetResponse is the public representation of a set.
type SetResponse struct {
	ID        int64   `json:"id"`
	SetNumber int     `json:"set_number"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
}

func newSetResponse(s domain.Set) SetResponse {
	return SetResponse{
		ID:        s.ID,
		SetNumber: s.SetNumber,
		Weight:    s.Weight,
		Reps:      s.Reps,
	}
}

func newSetListResponse(sets []domain.Set) []SetResponse {
	out := make([]SetResponse, 0, len(sets))
	for _, s := range sets {
		out = append(out, newSetResponse(s))
	}
	return out
}

// BlockResponse is the public representation of an exercise block.
type BlockResponse struct {
	ID         int64         `json:"id"`
	WorkoutID  int64         `json:"workout_id"`
	ExerciseID int64         `json:"exercise_id"`
	Sets       []SetResponse `json:"sets"`

	// Created reports whether the add-sets endpoint started a new
	// block. Omitted everywhere else.
	Created *bool `json:"created,omitempty"`
}

func newBlockResponse(b *domain.ExerciseBlock) BlockResponse {
	return BlockResponse{
		ID:         b.ID,
		WorkoutID:  b.WorkoutID,
		ExerciseID: b.ExerciseID,
		Sets:       newSetListResponse(b.Sets),
	}
}

func newBlockListResponse(blocks []*domain.ExerciseBlock) []BlockResponse {
	out := make([]BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, newBlockResponse(b))
	}
	return out
}
