// Package service provides application-level services for managing
// users, body parts, exercises and workouts.
package service

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an expected service failure. The set of codes is
// closed: every error a service method returns either carries one of
// these codes or is classified CodeInternal by CodeOf.
//
// Error handling principles:
//  1. Service methods return *Error values for expected failure conditions
//  2. Unexpected errors are wrapped with CodeInternal
//  3. Callers use errors.As / CodeOf to classify failures
//  4. The API layer maps codes to HTTP status codes via Code.HTTPStatus
type Code string

const (
	CodeInternal     Code = "INTERNAL_ERROR"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeNotFound     Code = "NOT_FOUND"

	CodeUserNotFound      Code = "USER_NOT_FOUND"
	CodeUserAlreadyExists Code = "USER_ALREADY_EXISTS"
	CodeInvalidEmail      Code = "INVALID_EMAIL"

	CodeBodyPartAlreadyExists Code = "BODY_PART_ALREADY_EXISTS"
	CodeBodyPartNotFound      Code = "BODY_PART_NOT_FOUND"

	CodeExerciseAlreadyExists Code = "EXERCISE_ALREADY_EXISTS"
	CodeExerciseNotFound      Code = "EXERCISE_NOT_FOUND"

	CodeWorkoutNotFound      Code = "WORKOUT_NOT_FOUND"
	CodeWorkoutAlreadyExists Code = "WORKOUT_ALREADY_EXISTS"

	CodeExerciseBlockNotFound Code = "EXERCISE_BLOCK_NOT_FOUND"
	CodeSetNotFound           Code = "SET_NOT_FOUND"
)

// HTTPStatus returns the HTTP status code for a service failure code.
// The mapping is total: unknown codes fall through to 500.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound,
		CodeUserNotFound,
		CodeBodyPartNotFound,
		CodeExerciseNotFound,
		CodeWorkoutNotFound,
		CodeExerciseBlockNotFound,
		CodeSetNotFound:
		return http.StatusNotFound
	case CodeValidation,
		CodeInvalidEmail,
		CodeUserAlreadyExists,
		CodeBodyPartAlreadyExists,
		CodeExerciseAlreadyExists,
		CodeWorkoutAlreadyExists:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is the service layer's failure type. It pairs a classification
// code with a human-readable message and the underlying cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a service error with the given code and message,
// wrapping err as the cause. err may be nil.
func NewError(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf classifies any error. A nil error has no code and returns "".
// Errors that are not *Error values are treated as internal failures.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return CodeInternal
}

// internalError wraps an unexpected failure so callers still receive a
// classified error.
func internalError(message string, err error) *Error {
	return NewError(CodeInternal, message, err)
}
