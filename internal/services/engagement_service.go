package services

import (
	"context"

	"github.com/linkstream-org/backend/internal/orm"
)

// EngagementService handles comment and like events against a post and the
// notification fan-out they trigger. Any authenticated identity may comment
// on or like any reachable post; no ownership check applies here.
type EngagementService interface {
	// CreateComment appends a comment, notifies the post's author unless the
	// commenter is the author, and queues the notification email
	// best-effort. Returns the post with the new comment included.
	CreateComment(ctx context.Context, postID string, content string) (*orm.Post, error)

	// ToggleLike flips the caller's membership in the post's liker set.
	// Entering the set notifies the author (unless self); leaving it never
	// does.
	ToggleLike(ctx context.Context, postID string) (*orm.Post, error)
}
