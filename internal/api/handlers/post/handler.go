package post

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/linkstream-org/backend/internal/lib"
	"github.com/linkstream-org/backend/internal/services"
)

// Request bodies are capped well above the largest reasonable post with an
// inline base64 image.
const maxBodyBytes = 8 * 1024 * 1024

// Handler serves the post routes: feed, single fetch, the three content
// mutations and the two engagement operations.
type Handler struct {
	posts      services.PostService
	engagement services.EngagementService
	feed       services.FeedService
	log        *zap.Logger
}

func NewHandler(posts services.PostService, engagement services.EngagementService, feed services.FeedService, log *zap.Logger) *Handler {
	return &Handler{
		posts:      posts,
		engagement: engagement,
		feed:       feed,
		log:        log,
	}
}

// readValidatedBody reads the request body and checks it against a JSON
// schema before any field is looked at.
func readValidatedBody(w http.ResponseWriter, r *http.Request, schema string) (json.RawMessage, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge", "Request body too large")
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Could not read request body")
		return nil, false
	}

	keyErrors, err := lib.ValidateJSON(body, schema)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return nil, false
	}
	if len(keyErrors) > 0 {
		writeError(w, http.StatusBadRequest, "InvalidRequest", keyErrors[0].Message)
		return nil, false
	}

	return body, true
}

// decodeImage turns an inline image string (raw base64 or a data URI) into
// bytes plus a content type.
func decodeImage(image string) ([]byte, string, error) {
	contentType := "application/octet-stream"
	payload := image

	if strings.HasPrefix(image, "data:") {
		rest := strings.TrimPrefix(image, "data:")
		semicolon := strings.Index(rest, ";base64,")
		if semicolon < 0 {
			return nil, "", errors.New("image data URI is not base64 encoded")
		}
		contentType = rest[:semicolon]
		payload = rest[semicolon+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", errors.New("image is not valid base64")
	}
	return data, contentType, nil
}

func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("error encoding response", zap.Error(err))
	}
}
