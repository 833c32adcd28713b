package api

import (
	"log/slog"
	"net/http"

	"github.com/repset/repset-api/internal/api/shared"
	"github.com/repset/repset-api/internal/service"
)

// BodyPartHandler handles body part catalog endpoints.
type BodyPartHandler struct {
	bodyPartService service.BodyPartService
	logger          *slog.Logger
}

// NewBodyPartHandler creates a new BodyPartHandler with the given dependencies.
func NewBodyPartHandler(bodyPartService service.BodyPartService, logger *slog.Logger) *BodyPartHandler {
	return &BodyPartHandler{
		bodyPartService: bodyPartService,
		logger:          logger.With("component", "bodypart_handler"),
	}
}

// List handles GET /body-parts
func (h *BodyPartHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	bodyParts, err := h.bodyPartService.ListBodyParts(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newBodyPartListResponse(bodyParts))
}

// Create handles POST /body-parts
func (h *BodyPartHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateBodyPartRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bodyPart, err := h.bodyPartService.CreateBodyPart(r.Context(), userID, req.Name)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newBodyPartResponse(bodyPart))
}

// Rename handles PUT /body-parts/{bodyPartID}
func (h *BodyPartHandler) Rename(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "bodyPartID")
	if !ok {
		return
	}

	var req RenameBodyPartRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bodyPart, err := h.bodyPartService.RenameBodyPart(r.Context(), userID, id, req.Name)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newBodyPartResponse(bodyPart))
}

// Delete handles DELETE /body-parts/{bodyPartID}
func (h *BodyPartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "bodyPartID")
	if !ok {
		return
	}

	if err := h.bodyPartService.DeleteBodyPart(r.Context(), userID, id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// DeleteAll handles DELETE /body-parts
func (h *BodyPartHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.bodyPartService.DeleteAllBodyParts(r.Context(), userID); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
