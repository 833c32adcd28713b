package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/repset/repset-api/internal/api/shared"
	"github.com/repset/repset-api/internal/service"
)

// ExerciseHandler handles exercise catalog endpoints.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	logger          *slog.Logger
}

// NewExerciseHandler creates a new ExerciseHandler with the given dependencies.
func NewExerciseHandler(exerciseService service.ExerciseService, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: exerciseService,
		logger:          logger.With("component", "exercise_handler"),
	}
}

// List handles GET /exercises with an optional body_part_ids filter,
// e.g. /exercises?body_part_ids=1,2.
func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	filter := r.URL.Query().Get("body_part_ids")
	if filter == "" {
		exercises, err := h.exerciseService.ListExercises(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, newExerciseListResponse(exercises))
		return
	}

	bodyPartIDs, err := parseIDList(filter)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "body_part_ids must be a comma-separated list of positive integers")
		return
	}

	exercises, svcErr := h.exerciseService.ListExercisesByBodyParts(r.Context(), userID, bodyPartIDs)
	if svcErr != nil {
		respondServiceError(w, r, svcErr)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newExerciseListResponse(exercises))
}

func parseIDList(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			return nil, strconv.ErrSyntax
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Create handles POST /exercises
func (h *ExerciseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateExerciseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	exercise, err := h.exerciseService.CreateExercise(r.Context(), userID, req.Name, req.Description, req.BodyPartID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newExerciseResponse(exercise))
}

// Rename handles PUT /exercises/{exerciseID}
func (h *ExerciseHandler) Rename(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "exerciseID")
	if !ok {
		return
	}

	var req RenameExerciseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	exercise, err := h.exerciseService.RenameExercise(r.Context(), userID, id, req.Name)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newExerciseResponse(exercise))
}

// Delete handles DELETE /exercises/{exerciseID}
func (h *ExerciseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "exerciseID")
	if !ok {
		return
	}

	if err := h.exerciseService.DeleteExercise(r.Context(), userID, id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// DeleteAll handles DELETE /exercises
func (h *ExerciseHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.exerciseService.DeleteAllExercises(r.Context(), userID); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
