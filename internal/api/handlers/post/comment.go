package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linkstream-org/backend/internal/lib"
	"github.com/linkstream-org/backend/internal/services"
)

type commentRequest struct {
	Content string `json:"content"`
}

// HandleComment handles POST /api/v1/posts/{id}/comments. Any authenticated
// user may comment on any reachable post.
func (h *Handler) HandleComment(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	body, ok := readValidatedBody(w, r, lib.CreateCommentSchema())
	if !ok {
		return
	}

	var req commentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	updated, err := h.engagement.CreateComment(r.Context(), postID, req.Content)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, services.NewPostView(updated, true))
}
