package api

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/repset/repset-api/internal/api/shared"
	"github.com/repset/repset-api/internal/domain"
	"github.com/repset/repset-api/internal/service"
)

// WorkoutHandler handles workout, exercise block and set endpoints.
type WorkoutHandler struct {
	workoutService service.WorkoutService
	logger         *slog.Logger
}

// NewWorkoutHandler creates a new WorkoutHandler with the given dependencies.
func NewWorkoutHandler(workoutService service.WorkoutService, logger *slog.Logger) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
		logger:         logger.With("component", "workout_handler"),
	}
}

// pathDate extracts a YYYY-MM-DD date from the URL path parameters.
func pathDate(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := chi.URLParam(r, "date")
	if err := domain.ValidateWorkoutDate(date); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "date must be formatted as YYYY-MM-DD")
		return "", false
	}
	return date, true
}

// pathExerciseName extracts the exercise name path parameter. Names
// may contain spaces, which arrive percent-encoded.
func pathExerciseName(w http.ResponseWriter, r *http.Request) (string, bool) {
	name, err := url.PathUnescape(chi.URLParam(r, "exerciseName"))
	if err != nil || name == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "invalid exercise name")
		return "", false
	}
	return name, true
}

// List handles GET /workouts
func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	workouts, err := h.workoutService.ListWorkouts(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newWorkoutListResponse(workouts))
}

// GetByDate handles GET /workouts/{date}
func (h *WorkoutHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	workout, err := h.workoutService.GetWorkoutByDate(r.Context(), userID, date)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	bodyParts, err := h.workoutService.ListWorkoutBodyParts(r.Context(), userID, date)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newWorkoutWithBodyPartsResponse(workout, bodyParts))
}

// Create handles POST /workouts
func (h *WorkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateWorkoutRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	workout, err := h.workoutService.CreateWorkout(r.Context(), userID, req.Date)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newWorkoutResponse(workout))
}

// CreateOrGet handles PUT /workouts: it starts a workout for the date
// or returns the existing one, reporting which happened.
func (h *WorkoutHandler) CreateOrGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateWorkoutRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	workout, created, err := h.workoutService.CreateOrGetWorkout(r.Context(), userID, req.Date)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	resp := newWorkoutResponse(workout)
	resp.Created = &created

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	shared.RespondWithJSON(w, r, status, resp)
}

// End handles POST /workouts/{date}/end
func (h *WorkoutHandler) End(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	workout, err := h.workoutService.EndWorkout(r.Context(), userID, date)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newWorkoutResponse(workout))
}

// Delete handles DELETE /workouts/{date}
func (h *WorkoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	if err := h.workoutService.DeleteWorkout(r.Context(), userID, date); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// DeleteAll handles DELETE /workouts
func (h *WorkoutHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.workoutService.DeleteAllWorkouts(r.Context(), userID); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// ListBodyParts handles GET /workouts/{date}/body-parts
func (h *WorkoutHandler) ListBodyParts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	bodyParts, err := h.workoutService.ListWorkoutBodyParts(r.Context(), userID, date)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newBodyPartListResponse(bodyParts))
}

// AddBodyParts handles POST /workouts/{date}/body-parts
func (h *WorkoutHandler) AddBodyParts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	var req WorkoutBodyPartsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	workout, bodyParts, err := h.workoutService.AddBodyPartsToWorkout(r.Context(), userID, date, req.Names)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newWorkoutWithBodyPartsResponse(workout, bodyParts))
}

// RemoveBodyParts handles DELETE /workouts/{date}/body-parts
func (h *WorkoutHandler) RemoveBodyParts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	var req WorkoutBodyPartsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	workout, bodyParts, err := h.workoutService.RemoveBodyPartsFromWorkout(r.Context(), userID, date, req.Names)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newWorkoutWithBodyPartsResponse(workout, bodyParts))
}

// ListBlocks handles GET /workouts/{date}/blocks. The exercise and
// body_part query parameters narrow the result by name.
func (h *WorkoutHandler) ListBlocks(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	filter := service.BlockFilter{
		ExerciseName: r.URL.Query().Get("exercise"),
		BodyPartName: r.URL.Query().Get("body_part"),
	}

	blocks, err := h.workoutService.ListExerciseBlocks(r.Context(), userID, date, filter)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newBlockListResponse(blocks))
}

// CreateBlock handles POST /workouts/{date}/blocks. It adds the sets
// to the named exercise's block, creating the block if needed, and
// reports which happened through the status code.
func (h *WorkoutHandler) CreateBlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	var req CreateBlockRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	block, created, err := h.workoutService.CreateExerciseBlock(
		r.Context(), userID, date, req.ExerciseName, toSetInputs(req.Sets))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	resp := newBlockResponse(block)
	resp.Created = &created

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	shared.RespondWithJSON(w, r, status, resp)
}

// UpdateBlockSets handles PUT /workouts/{date}/blocks/{exerciseName}/sets
func (h *WorkoutHandler) UpdateBlockSets(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	date, ok := pathDate(w, r)
	if !ok {
		return
	}
	exerciseName, ok := pathExerciseName(w, r)
	if !ok {
		return
	}

	var req UpdateBlockSetsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	block, err := h.workoutService.UpdateExerciseBlockSets(
		r.Context(), userID, date, exerciseName, toSetInputs(req.Sets))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newBlockResponse(block))
}

// GetBlockSets handles GET /workouts/{date}/blocks/{exerciseName}/sets
func (h *WorkoutHandler) GetBlockSets(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	date, ok := pathDate(w, r)
	if !ok {
		return
	}
	exerciseName, ok := pathExerciseName(w, r)
	if !ok {
		return
	}

	sets, err := h.workoutService.GetBlockSets(r.Context(), userID, date, exerciseName)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newSetListResponse(sets))
}

// DeleteBlock handles DELETE /workouts/{date}/blocks/{exerciseName}
func (h *WorkoutHandler) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	date, ok := pathDate(w, r)
	if !ok {
		return
	}
	exerciseName, ok := pathExerciseName(w, r)
	if !ok {
		return
	}

	if err := h.workoutService.DeleteExerciseBlock(r.Context(), userID, date, exerciseName); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// UpdateSet handles PUT /sets/{setID}
func (h *WorkoutHandler) UpdateSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	setID, ok := pathID(w, r, "setID")
	if !ok {
		return
	}

	var req UpdateSetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	set, err := h.workoutService.UpdateSet(r.Context(), userID, setID, req.Weight, req.Reps)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newSetResponse(set))
}

// DeleteSet handles DELETE /sets/{setID}
func (h *WorkoutHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	setID, ok := pathID(w, r, "setID")
	if !ok {
		return
	}

	if err := h.workoutService.DeleteSet(r.Context(), userID, setID); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

func toSetInputs(payloads []SetPayload) []service.SetInput {
	inputs := make([]service.SetInput, 0, len(payloads))
	for _, p := range payloads {
		inputs = append(inputs, service.SetInput{Weight: p.Weight, Reps: p.Reps})
	}
	return inputs
}
