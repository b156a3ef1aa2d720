package engagement

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/linkstream-org/backend/internal/event"
	"github.com/linkstream-org/backend/internal/lib"
	"github.com/linkstream-org/backend/internal/middleware"
	"github.com/linkstream-org/backend/internal/orm"
	"github.com/linkstream-org/backend/internal/services"
)

// Store is the slice of the persistence layer engagement needs.
type Store interface {
	SelectPostByID(id string) (*orm.Post, error)
	InsertComment(comment *orm.Comment) error
	SelectPostLike(postID string, userID string) (*orm.PostLike, error)
	InsertPostLike(like *orm.PostLike) error
	DeletePostLike(like *orm.PostLike) error
	InsertNotification(notification *orm.Notification) error
}

// Publisher hands engagement events to the broker feeding the mail worker.
type Publisher interface {
	Publish(ctx context.Context, event string, message interface{}) error
}

type EngagementServiceImpl struct {
	db     Store
	broker Publisher
	log    *zap.Logger
}

func NewEngagementService(db Store, broker Publisher, log *zap.Logger) services.EngagementService {
	return &EngagementServiceImpl{
		db:     db,
		broker: broker,
		log:    log,
	}
}

func (s *EngagementServiceImpl) CreateComment(ctx context.Context, postID string, content string) (*orm.Post, error) {
	userID, err := middleware.GetUserUUID(ctx)
	if err != nil {
		return nil, lib.NotAuthorizedError("no authenticated user")
	}

	if content == "" {
		return nil, lib.InvalidRequestError("comment needs content")
	}

	post, err := s.db.SelectPostByID(postID)
	if err != nil {
		return nil, lib.PersistenceError(err)
	}

	comment := &orm.Comment{
		PostID:   post.ID,
		AuthorID: userID,
		Content:  content,
	}
	if err := s.db.InsertComment(comment); err != nil {
		s.log.Error("error inserting comment", zap.Error(err))
		return nil, lib.PersistenceError(err)
	}

	// Commenting on your own post notifies nobody.
	if post.AuthorID != userID {
		notification := &orm.Notification{
			RecipientID: post.AuthorID,
			Kind:        orm.NotificationKindComment,
			ActorID:     userID,
			PostID:      post.ID,
		}
		if err := s.db.InsertNotification(notification); err != nil {
			s.log.Error("error inserting comment notification", zap.Error(err))
			return nil, lib.PersistenceError(err)
		}

		// The comment and notification are already durable; a broker outage
		// only costs the email.
		message := &event.EngagementCommentMessage{
			PostID:      post.ID.String(),
			CommentID:   comment.ID.String(),
			RecipientID: post.AuthorID.String(),
			ActorID:     userID.String(),
			Content:     content,
		}
		if err := s.broker.Publish(ctx, event.ENGAGEMENT_COMMENT, message); err != nil {
			s.log.Warn("error publishing comment email event", zap.Error(err))
		}
	}

	return s.reload(postID)
}

func (s *EngagementServiceImpl) ToggleLike(ctx context.Context, postID string) (*orm.Post, error) {
	userID, err := middleware.GetUserUUID(ctx)
	if err != nil {
		return nil, lib.NotAuthorizedError("no authenticated user")
	}

	post, err := s.db.SelectPostByID(postID)
	if err != nil {
		return nil, lib.PersistenceError(err)
	}

	like, err := s.db.SelectPostLike(postID, userID.String())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Error("error checking post like", zap.Error(err))
		return nil, lib.PersistenceError(err)
	}

	if like != nil {
		// liked -> not-liked: leave the set, notify nobody.
		if err := s.db.DeletePostLike(like); err != nil {
			s.log.Error("error deleting post like", zap.Error(err))
			return nil, lib.PersistenceError(err)
		}
		return s.reload(postID)
	}

	// not-liked -> liked. The unique (post_id, user_id) index keeps the set
	// duplicate-free even when two toggles race.
	if err := s.db.InsertPostLike(&orm.PostLike{PostID: post.ID, UserID: userID}); err != nil {
		s.log.Error("error inserting post like", zap.Error(err))
		return nil, lib.PersistenceError(err)
	}

	if post.AuthorID != userID {
		notification := &orm.Notification{
			RecipientID: post.AuthorID,
			Kind:        orm.NotificationKindLike,
			ActorID:     userID,
			PostID:      post.ID,
		}
		if err := s.db.InsertNotification(notification); err != nil {
			s.log.Error("error inserting like notification", zap.Error(err))
			return nil, lib.PersistenceError(err)
		}
	}

	return s.reload(postID)
}

func (s *EngagementServiceImpl) reload(postID string) (*orm.Post, error) {
	post, err := s.db.SelectPostByID(postID)
	if err != nil {
		s.log.Error("error reloading post", zap.Error(err))
		return nil, lib.PersistenceError(err)
	}
	return post, nil
}
