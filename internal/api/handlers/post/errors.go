package post

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/linkstream-org/backend/internal/lib"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	})
}

// handleServiceError maps the closed error taxonomy to HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case lib.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")

	case lib.IsNotAuthorized(err):
		writeError(w, http.StatusForbidden, "NotAuthorized", "You are not allowed to perform this action")

	case lib.IsInvalidRequest(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case lib.IsExternalDependency(err):
		log.Error("external dependency failure", zap.Error(err))
		writeError(w, http.StatusBadGateway, "ExternalDependencyFailure", "An upstream dependency failed")

	default:
		// Don't leak internal error details to clients.
		log.Error("unexpected error in post handler", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
