package notification

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/linkstream-org/backend/internal/lib"
	"github.com/linkstream-org/backend/internal/services"
)

// Handler serves the notification read path. This backend only appends
// notifications; marking them read belongs to the profile service.
type Handler struct {
	feed services.FeedService
	log  *zap.Logger
}

func NewHandler(feed services.FeedService, log *zap.Logger) *Handler {
	return &Handler{
		feed: feed,
		log:  log,
	}
}

type listResponse struct {
	Notifications []services.NotificationView `json:"notifications"`
}

// HandleList handles GET /api/v1/notifications, newest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequest", "limit must be an integer")
			return
		}
		limit = parsed
	}

	views, err := h.feed.ListNotifications(r.Context(), limit)
	if err != nil {
		if lib.IsNotAuthorized(err) {
			writeError(w, http.StatusForbidden, "NotAuthorized", "You are not allowed to perform this action")
			return
		}
		h.log.Error("unexpected error in notification handler", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(listResponse{Notifications: views}); err != nil {
		h.log.Error("error encoding response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   errorType,
		"message": message,
	})
}
