package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linkstream-org/backend/internal/lib"
	"github.com/linkstream-org/backend/internal/services"
)

type updateRequest struct {
	Content *string `json:"content"`
	Image   string  `json:"image"`
}

// HandleUpdate handles PUT /api/v1/posts/{id}. Only fields present in the
// payload change; a new image replaces the old asset.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	body, ok := readValidatedBody(w, r, lib.UpdatePostSchema())
	if !ok {
		return
	}

	var req updateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	var image []byte
	var contentType string
	if req.Image != "" {
		var err error
		image, contentType, err = decodeImage(req.Image)
		if err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
			return
		}
	}

	updated, err := h.posts.UpdatePost(r.Context(), postID, req.Content, image, contentType)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, services.NewPostView(updated, true))
}
