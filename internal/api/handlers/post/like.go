package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linkstream-org/backend/internal/services"
)

// HandleLike handles POST /api/v1/posts/{id}/like. The same call likes and
// unlikes: it toggles the caller's membership in the liker set.
func (h *Handler) HandleLike(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	updated, err := h.engagement.ToggleLike(r.Context(), postID)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, services.NewPostView(updated, true))
}
