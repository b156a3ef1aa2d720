package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkstream-org/backend/internal/api/handlers/notification"
)

// RegisterNotificationRoutes mounts the notification read endpoint.
func RegisterNotificationRoutes(r chi.Router, handler *notification.Handler) {
	r.Get("/notifications", handler.HandleList)
}
