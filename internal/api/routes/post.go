package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkstream-org/backend/internal/api/handlers/post"
)

// RegisterPostRoutes mounts the post endpoints. All of them sit behind the
// authorization middleware applied by the server.
func RegisterPostRoutes(r chi.Router, handler *post.Handler) {
	r.Get("/feed", handler.HandleFeed)

	r.Post("/posts", handler.HandleCreate)
	r.Get("/posts/{id}", handler.HandleGet)
	r.Put("/posts/{id}", handler.HandleUpdate)
	r.Delete("/posts/{id}", handler.HandleDelete)

	r.Post("/posts/{id}/comments", handler.HandleComment)
	r.Post("/posts/{id}/like", handler.HandleLike)
}
