package post

import (
	"encoding/json"
	"net/http"

	"github.com/linkstream-org/backend/internal/lib"
	"github.com/linkstream-org/backend/internal/services"
)

type createRequest struct {
	Content string `json:"content"`
	Image   string `json:"image"`
}

// HandleCreate handles POST /api/v1/posts. The schema rejects a payload
// with neither content nor image before the service is involved.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body, ok := readValidatedBody(w, r, lib.CreatePostSchema())
	if !ok {
		return
	}

	var req createRequest
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

	created, err := h.posts.CreatePost(r.Context(), req.Content, image, contentType)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusCreated, services.NewPostView(created, true))
}
