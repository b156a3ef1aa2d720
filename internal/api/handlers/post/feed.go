package post

import (
	"net/http"
	"strconv"
)

type feedResponse struct {
	Posts      interface{} `json:"posts"`
	NextCursor string      `json:"next_cursor,omitempty"`
}

// HandleFeed handles GET /api/v1/feed. The page is scoped to posts authored
// by the caller and the caller's connections, newest first.
func (h *Handler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	cursor := r.URL.Query().Get("cursor")

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequest", "limit must be an integer")
			return
		}
		limit = parsed
	}

	views, nextCursor, err := h.feed.ListFeed(r.Context(), cursor, limit)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, feedResponse{
		Posts:      views,
		NextCursor: nextCursor,
	})
}
