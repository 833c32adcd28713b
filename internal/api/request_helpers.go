package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/repset/repset-api/internal/api/shared"
)

var validate = validator.New()

// decodeAndValidate decodes the request body into dst and runs
// struct-tag validation. On failure it writes a 400 response and
// returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request: "+err.Error())
		return false
	}

	return true
}

// requireUserID extracts the authenticated user ID placed in the
// context by the auth middleware. On failure it writes a 401 response
// and returns false.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return "", false
	}
	return userID, true
}

// pathID extracts a positive integer ID from the URL path parameters.
// On failure it writes a 400 response and returns false.
func pathID(w http.ResponseWriter, r *http.Request, paramName string) (int64, bool) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", paramName+" must be a positive integer")
		return 0, false
	}
	return id, true
}
