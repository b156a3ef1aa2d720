package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HandleDelete handles DELETE /api/v1/posts/{id}. Author only; the external
// image asset is released first and a release failure leaves the post in
// place.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	if err := h.posts.DeletePost(r.Context(), postID); err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]string{
		"message": "Post deleted successfully",
	})
}
