package services

import (
	"context"

	"github.com/linkstream-org/backend/internal/orm"
)

// PostService owns post content mutations. The acting identity is taken
// from the request context; edit and delete are restricted to the author.
type PostService interface {
	// CreatePost stores a new post with text and/or one image. The image is
	// uploaded to the object store first; an upload failure aborts the whole
	// operation.
	CreatePost(ctx context.Context, content string, image []byte, imageContentType string) (*orm.Post, error)

	// UpdatePost applies content and/or image changes to the caller's own
	// post. A replaced image's old asset is removed best-effort once the new
	// upload has succeeded.
	UpdatePost(ctx context.Context, postID string, content *string, image []byte, imageContentType string) (*orm.Post, error)

	// DeletePost removes the caller's own post. The external image asset
	// must be released first; if that release fails the post is left intact.
	DeletePost(ctx context.Context, postID string) error
}
