package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/repset/repset-api/internal/domain"
	"github.com/repset/repset-api/internal/service"
)

func testExercise(t *testing.T, id int64, name string, bodyPartID int64) *domain.Exercise {
	t.Helper()
	ex, err := domain.NewExerciseFromStorage(id, testUserID, name, "", bodyPartID)
	require.NoError(t, err)
	return ex
}

func TestExerciseHandler_List(t *testing.T) {
	t.Run("returns the user's exercises", func(t *testing.T) {
		svc := new(mockExerciseService)
		handler := NewExerciseHandler(svc, testLogger())

		svc.On("ListExercises", mock.Anything, testUserID).
			Return([]*domain.Exercise{
				testExercise(t, 10, "Bench Press", 1),
				testExercise(t, 11, "Deadlift", 2),
			}, nil)

		rec := httptest.NewRecorder()
		handler.List(rec, newTestRequest(t, http.MethodGet, "/exercises", nil, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []ExerciseResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "Bench Press", resp[0].Name)
		assert.Equal(t, int64(2), resp[1].BodyPartID)
	})

	t.Run("filters by body part IDs", func(t *testing.T) {
		svc := new(mockExerciseService)
		handler := NewExerciseHandler(svc, testLogger())

		svc.On("ListExercisesByBodyParts", mock.Anything, testUserID, []int64{1, 2}).
			Return([]*domain.Exercise{testExercise(t, 10, "Bench Press", 1)}, nil)

		rec := httptest.NewRecorder()
		handler.List(rec, newTestRequest(t, http.MethodGet, "/exercises?body_part_ids=1,2", nil, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []ExerciseResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.Equal(t, int64(10), resp[0].ID)
		svc.AssertNotCalled(t, "ListExercises", mock.Anything, mock.Anything)
	})

	t.Run("rejects a malformed filter before reaching the service", func(t *testing.T) {
		svc := new(mockExerciseService)
		handler := NewExerciseHandler(svc, testLogger())

		rec := httptest.NewRecorder()
		handler.List(rec, newTestRequest(t, http.MethodGet, "/exercises?body_part_ids=1,abc", nil, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "ListExercisesByBodyParts",
			mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("maps an unknown body part in the filter to 404", func(t *testing.T) {
		svc := new(mockExerciseService)
		handler := NewExerciseHandler(svc, testLogger())

		svc.On("ListExercisesByBodyParts", mock.Anything, testUserID, []int64{99}).
			Return(nil, service.NewError(service.CodeBodyPartNotFound, "body part not found", nil))

		rec := httptest.NewRecorder()
		handler.List(rec, newTestRequest(t, http.MethodGet, "/exercises?body_part_ids=99", nil, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, string(service.CodeBodyPartNotFound), resp.Code)
	})

	t.Run("requires authentication", func(t *testing.T) {
		svc := new(mockExerciseService)
		handler := NewExerciseHandler(svc, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/exercises", nil)
		rec := httptest.NewRecorder()
		handler.List(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "ListExercises", mock.Anything, mock.Anything)
	})
}

func TestExerciseHandler_Create(t *testing.T) {
	t.Run("creates an exercise", func(t *testing.T) {
		svc := new(mockExerciseService)
		handler := NewExerciseHandler(svc, testLogger())

		svc.On("CreateExercise", mock.Anything, testUserID, "Squat", "high bar", int64(3)).
			Return(testExercise(t, 12, "Squat", 3), nil)

		rec := httptest.NewRecorder()
		handler.Create(rec, newTestRequest(t, http.MethodPost, "/exercises",
			CreateExerciseRequest{Name: "Squat", Description: "high bar", BodyPartID: 3}, nil))

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp ExerciseResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(12), resp.ID)
		assert.Equal(t, "Squat", resp.Name)
	})

	t.Run("maps an unknown body part to 404", func(t *testing.T) {
		svc := new(mockExerciseService)
		handler := NewExerciseHandler(svc, testLogger())

		svc.On("CreateExercise", mock.Anything, testUserID, "Squat", "", int64(99)).
			Return(nil, service.NewError(service.CodeBodyPartNotFound, "body part not found", nil))

		rec := httptest.NewRecorder()
		handler.Create(rec, newTestRequest(t, http.MethodPost, "/exercises",
			CreateExerciseRequest{Name: "Squat", BodyPartID: 99}, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, string(service.CodeBodyPartNotFound), resp.Code)
	})

	t.Run("rejects a missing name before reaching the service", func(t *testing.T) {
		svc := new(mockExerciseService)
		handler := NewExerciseHandler(svc, testLogger())

		rec := httptest.NewRecorder()
		handler.Create(rec, newTestRequest(t, http.MethodPost, "/exercises",
			CreateExerciseRequest{BodyPartID: 3}, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "CreateExercise",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestExerciseHandler_Rename(t *testing.T) {
	t.Run("renames an exercise", func(t *testing.T) {
		svc := new(mockExerciseService)
		handler := NewExerciseHandler(svc, testLogger())

		svc.On("RenameExercise", mock.Anything, testUserID, int64(10), "Incline Press").
			Return(testExercise(t, 10, "Incline Press", 1), nil)

		rec := httptest.NewRecorder()
		handler.Rename(rec, newTestRequest(t, http.MethodPut, "/exercises/10",
			RenameExerciseRequest{Name: "Incline Press"},
			map[string]string{"exerciseID": "10"}))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ExerciseResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Incline Press", resp.Name)
	})

	t.Run("rejects a non-numeric ID", func(t *testing.T) {
		svc := new(mockExerciseService)
		handler := NewExerciseHandler(svc, testLogger())

		rec := httptest.NewRecorder()
		handler.Rename(rec, newTestRequest(t, http.MethodPut, "/exercises/abc",
			RenameExerciseRequest{Name: "Incline Press"},
			map[string]string{"exerciseID": "abc"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "RenameExercise",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("maps a name conflict to 400", func(t *testing.T) {
		svc := new(mockExerciseService)
		handler := NewExerciseHandler(svc, testLogger())

		svc.On("RenameExercise", mock.Anything, testUserID, int64(10), "Deadlift").
			Return(nil, service.NewError(service.CodeExerciseAlreadyExists, "exercise already exists", nil))

		rec := httptest.NewRecorder()
		handler.Rename(rec, newTestRequest(t, http.MethodPut, "/exercises/10",
			RenameExerciseRequest{Name: "Deadlift"},
			map[string]string{"exerciseID": "10"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, string(service.CodeExerciseAlreadyExists), resp.Code)
	})
}

func TestExerciseHandler_Delete(t *testing.T) {
	t.Run("deletes an exercise", func(t *testing.T) {
		svc := new(mockExerciseService)
		handler := NewExerciseHandler(svc, testLogger())

		svc.On("DeleteExercise", mock.Anything, testUserID, int64(10)).Return(nil)

		rec := httptest.NewRecorder()
		handler.Delete(rec, newTestRequest(t, http.MethodDelete, "/exercises/10", nil,
			map[string]string{"exerciseID": "10"}))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("maps unknown IDs to 404", func(t *testing.T) {
		svc := new(mockExerciseService)
		handler := NewExerciseHandler(svc, testLogger())

		svc.On("DeleteExercise", mock.Anything, testUserID, int64(404)).
			Return(service.NewError(service.CodeExerciseNotFound, "exercise not found", nil))

		rec := httptest.NewRecorder()
		handler.Delete(rec, newTestRequest(t, http.MethodDelete, "/exercises/404", nil,
			map[string]string{"exerciseID": "404"}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, string(service.CodeExerciseNotFound), resp.Code)
	})
}

func TestExerciseHandler_DeleteAll(t *testing.T) {
	svc := new(mockExerciseService)
	handler := NewExerciseHandler(svc, testLogger())

	svc.On("DeleteAllExercises", mock.Anything, testUserID).Return(nil)

	rec := httptest.NewRecorder()
	handler.DeleteAll(rec, newTestRequest(t, http.MethodDelete, "/exercises", nil, nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}
