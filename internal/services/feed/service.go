package feed

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/linkstream-org/backend/internal/lib"
	"github.com/linkstream-org/backend/internal/middleware"
	"github.com/linkstream-org/backend/internal/orm"
	"github.com/linkstream-org/backend/internal/services"
)

const DefaultPageSize = 20

// Store is the slice of the persistence layer the read path needs.
type Store interface {
	SelectPostByID(id string) (*orm.Post, error)
	SelectPostsByAuthorIDs(authorIDs []uuid.UUID, cursor string, limit int) ([]*orm.Post, error)
	SelectConnectionIDs(userID string) ([]uuid.UUID, error)
	SelectNotificationsByRecipient(recipientID string, limit int) ([]*orm.Notification, error)
}

// Cache stores serialized first feed pages.
type Cache interface {
	CacheFeed(ctx context.Context, userID string, payload []byte) error
	GetCachedFeed(ctx context.Context, userID string) ([]byte, error)
}

type FeedServiceImpl struct {
	db    Store
	cache Cache
	log   *zap.Logger
}

func NewFeedService(db Store, cache Cache, log *zap.Logger) services.FeedService {
	return &FeedServiceImpl{
		db:    db,
		cache: cache,
		log:   log,
	}
}

// cachedPage is the serialized form of a first feed page.
type cachedPage struct {
	Posts      []services.PostView `json:"posts"`
	NextCursor string              `json:"next_cursor"`
}

func (s *FeedServiceImpl) ListFeed(ctx context.Context, cursor string, limit int) ([]services.PostView, string, error) {
	userID, err := middleware.GetUserUUID(ctx)
	if err != nil {
		return nil, "", lib.NotAuthorizedError("no authenticated user")
	}

	if limit <= 0 || limit > 100 {
		limit = DefaultPageSize
	}

	// Only the first page is cached; cursors fan out too much to be worth
	// keeping.
	if cursor == "" {
		if page := s.cachedFirstPage(ctx, userID.String()); page != nil {
			return page.Posts, page.NextCursor, nil
		}
	}

	connectionIDs, err := s.db.SelectConnectionIDs(userID.String())
	if err != nil {
		s.log.Error("error selecting connections", zap.Error(err))
		return nil, "", lib.PersistenceError(err)
	}
	authorIDs := append(connectionIDs, userID)

	posts, err := s.db.SelectPostsByAuthorIDs(authorIDs, cursor, limit)
	if err != nil {
		s.log.Error("error selecting feed posts", zap.Error(err))
		return nil, "", lib.PersistenceError(err)
	}

	views := services.NewPostViews(posts)

	nextCursor := ""
	if len(posts) == limit {
		nextCursor = posts[len(posts)-1].ID.String()
	}

	if cursor == "" {
		s.cacheFirstPage(ctx, userID.String(), &cachedPage{
			Posts:      views,
			NextCursor: nextCursor,
		})
	}

	return views, nextCursor, nil
}

func (s *FeedServiceImpl) GetPost(ctx context.Context, postID string) (*services.PostView, error) {
	post, err := s.db.SelectPostByID(postID)
	if err != nil {
		return nil, lib.PersistenceError(err)
	}

	view := services.NewPostView(post, true)
	return &view, nil
}

func (s *FeedServiceImpl) ListNotifications(ctx context.Context, limit int) ([]services.NotificationView, error) {
	userID, err := middleware.GetUserUUID(ctx)
	if err != nil {
		return nil, lib.NotAuthorizedError("no authenticated user")
	}

	if limit <= 0 || limit > 100 {
		limit = DefaultPageSize
	}

	notifications, err := s.db.SelectNotificationsByRecipient(userID.String(), limit)
	if err != nil {
		s.log.Error("error selecting notifications", zap.Error(err))
		return nil, lib.PersistenceError(err)
	}

	views := make([]services.NotificationView, 0, len(notifications))
	for _, notification := range notifications {
		views = append(views, services.NewNotificationView(notification))
	}
	return views, nil
}

func (s *FeedServiceImpl) cachedFirstPage(ctx context.Context, userID string) *cachedPage {
	payload, err := s.cache.GetCachedFeed(ctx, userID)
	if err != nil {
		s.log.Warn("error reading feed cache", zap.Error(err))
		return nil
	}
	if payload == nil {
		return nil
	}

	var page cachedPage
	if err := json.Unmarshal(payload, &page); err != nil {
		s.log.Warn("error decoding cached feed page", zap.Error(err))
		return nil
	}
	return &page
}

func (s *FeedServiceImpl) cacheFirstPage(ctx context.Context, userID string, page *cachedPage) {
	payload, err := json.Marshal(page)
	if err != nil {
		s.log.Warn("error encoding feed page for cache", zap.Error(err))
		return
	}
	if err := s.cache.CacheFeed(ctx, userID, payload); err != nil {
		s.log.Warn("error writing feed cache", zap.Error(err))
	}
}
