package post

import (
	"context"

	"go.uber.org/zap"

	"github.com/linkstream-org/backend/internal/lib"
	"github.com/linkstream-org/backend/internal/middleware"
	"github.com/linkstream-org/backend/internal/orm"
	"github.com/linkstream-org/backend/internal/services"
)

// Store is the slice of the persistence layer this service needs.
type Store interface {
	SelectPostByID(id string) (*orm.Post, error)
	InsertPost(post *orm.Post) error
	UpdatePost(post *orm.Post) error
	DeletePost(post *orm.Post) error
}

// MediaStore uploads and releases post image assets.
type MediaStore interface {
	UploadImage(ctx context.Context, data []byte, contentType string) (string, string, error)
	DeleteImage(ctx context.Context, key string) error
}

// FeedCache invalidates cached feed pages after a mutation.
type FeedCache interface {
	InvalidateFeed(ctx context.Context, userID string) error
}

type PostServiceImpl struct {
	db    Store
	media MediaStore
	cache FeedCache
	log   *zap.Logger
}

func NewPostService(db Store, media MediaStore, cache FeedCache, log *zap.Logger) services.PostService {
	return &PostServiceImpl{
		db:    db,
		media: media,
		cache: cache,
		log:   log,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, content string, image []byte, imageContentType string) (*orm.Post, error) {
	userID, err := middleware.GetUserUUID(ctx)
	if err != nil {
		return nil, lib.NotAuthorizedError("no authenticated user")
	}

	if content == "" && len(image) == 0 {
		return nil, lib.InvalidRequestError("post needs content or an image")
	}

	post := &orm.Post{
		AuthorID: userID,
		Content:  content,
	}

	if len(image) > 0 {
		imageURL, imageKey, err := s.media.UploadImage(ctx, image, imageContentType)
		if err != nil {
			s.log.Error("error uploading post image", zap.Error(err))
			return nil, lib.ExternalError("image upload", err)
		}
		post.ImageURL = imageURL
		post.ImageKey = imageKey
	}

	if err := s.db.InsertPost(post); err != nil {
		s.log.Error("error inserting post", zap.Error(err))
		return nil, lib.PersistenceError(err)
	}

	s.invalidateFeed(ctx, userID.String())

	return s.reload(post.ID.String())
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, postID string, content *string, image []byte, imageContentType string) (*orm.Post, error) {
	post, err := s.db.SelectPostByID(postID)
	if err != nil {
		return nil, lib.PersistenceError(err)
	}

	userID, err := middleware.GetUserUUID(ctx)
	if err != nil {
		return nil, lib.NotAuthorizedError("no authenticated user")
	}

	if !lib.IsOwner(post.AuthorID, userID) {
		return nil, lib.NotAuthorizedError("only the author can edit a post")
	}

	if content != nil {
		post.Content = *content
	}

	if len(image) > 0 {
		imageURL, imageKey, err := s.media.UploadImage(ctx, image, imageContentType)
		if err != nil {
			s.log.Error("error uploading replacement image", zap.Error(err))
			return nil, lib.ExternalError("image upload", err)
		}

		// The new asset is durable at this point, so a failure to release
		// the old one must not fail the edit.
		if post.HasImage() {
			if err := s.media.DeleteImage(ctx, post.ImageKey); err != nil {
				s.log.Warn("error deleting replaced image, leaving it orphaned",
					zap.String("image_key", post.ImageKey),
					zap.Error(err),
				)
			}
		}

		post.ImageURL = imageURL
		post.ImageKey = imageKey
	}

	if err := s.db.UpdatePost(post); err != nil {
		s.log.Error("error updating post", zap.Error(err))
		return nil, lib.PersistenceError(err)
	}

	s.invalidateFeed(ctx, userID.String())

	return s.reload(post.ID.String())
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, postID string) error {
	post, err := s.db.SelectPostByID(postID)
	if err != nil {
		return lib.PersistenceError(err)
	}

	userID, err := middleware.GetUserUUID(ctx)
	if err != nil {
		return lib.NotAuthorizedError("no authenticated user")
	}

	if !lib.IsOwner(post.AuthorID, userID) {
		return lib.NotAuthorizedError("only the author can delete a post")
	}

	// The external asset must be released before the record goes away. If
	// the release fails the delete is aborted and the post stays intact
	// rather than silently orphaning the asset.
	if post.HasImage() {
		if err := s.media.DeleteImage(ctx, post.ImageKey); err != nil {
			s.log.Error("error deleting post image, aborting post delete",
				zap.String("image_key", post.ImageKey),
				zap.Error(err),
			)
			return lib.ExternalError("image delete", err)
		}
	}

	if err := s.db.DeletePost(post); err != nil {
		s.log.Error("error deleting post", zap.Error(err))
		return lib.PersistenceError(err)
	}

	s.invalidateFeed(ctx, userID.String())
	return nil
}

func (s *PostServiceImpl) reload(postID string) (*orm.Post, error) {
	post, err := s.db.SelectPostByID(postID)
	if err != nil {
		s.log.Error("error reloading post", zap.Error(err))
		return nil, lib.PersistenceError(err)
	}
	return post, nil
}

func (s *PostServiceImpl) invalidateFeed(ctx context.Context, userID string) {
	if err := s.cache.InvalidateFeed(ctx, userID); err != nil {
		s.log.Warn("error invalidating feed cache", zap.Error(err))
	}
}
