package services

import (
	"context"
)

// FeedService is the read path: it joins posts with author and commenter
// profile summaries for display.
type FeedService interface {
	// ListFeed returns posts authored by the caller or the caller's
	// connections, newest first. The returned cursor is empty when the feed
	// is exhausted.
	ListFeed(ctx context.Context, cursor string, limit int) ([]PostView, string, error)

	// GetPost returns one post with the fuller commenter projection.
	GetPost(ctx context.Context, postID string) (*PostView, error)

	// ListNotifications returns the caller's notifications, newest first.
	ListNotifications(ctx context.Context, limit int) ([]NotificationView, error)
}
