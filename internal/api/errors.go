package api

import (
	"errors"
	"net/http"

	"github.com/repset/repset-api/internal/api/shared"
	"github.com/repset/repset-api/internal/service"
)

// respondServiceError translates a service failure into an HTTP error
// response. The classification code decides the status, and the safe
// message is taken from the service error when one is present. Internal
// failures get a generic message so raw error strings never reach the
// client.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code := service.CodeOf(err)
	status := code.HTTPStatus()

	message := safeErrorMessage(err, status)
	shared.RespondWithErrorAndLog(w, r, status, string(code), message, err)
}

func safeErrorMessage(err error, status int) string {
	if status >= 500 {
		return "An unexpected error occurred"
	}

	var svcErr *service.Error
	if errors.As(err, &svcErr) && svcErr.Message != "" {
		return svcErr.Message
	}
	return http.StatusText(status)
}
