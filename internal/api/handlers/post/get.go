package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HandleGet handles GET /api/v1/posts/{id}. The single-post view resolves
// the fuller commenter projection (username and headline included).
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	view, err := h.feed.GetPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, view)
}
