package post

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/linkstream-org/backend/internal/lib"
	"github.com/linkstream-org/backend/internal/middleware"
	"github.com/linkstream-org/backend/internal/orm"
)

type fakeStore struct {
	posts map[uuid.UUID]*orm.Post
}

func newFakeStore(posts ...*orm.Post) *fakeStore {
	store := &fakeStore{posts: map[uuid.UUID]*orm.Post{}}
	for _, post := range posts {
		store.posts[post.ID] = post
	}
	return store
}

func (f *fakeStore) SelectPostByID(id string) (*orm.Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	post, ok := f.posts[postID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	loaded := *post
	return &loaded, nil
}

func (f *fakeStore) InsertPost(post *orm.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	if err := post.Validate(); err != nil {
		return err
	}
	post.CreatedAt = time.Now()
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakeStore) UpdatePost(post *orm.Post) error {
	if _, ok := f.posts[post.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if err := post.Validate(); err != nil {
		return err
	}
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakeStore) DeletePost(post *orm.Post) error {
	delete(f.posts, post.ID)
	return nil
}

type fakeMedia struct {
	uploads      int
	deleted      []string
	failUpload   bool
	failDelete   bool
	lastUploaded []byte
}

func (f *fakeMedia) UploadImage(ctx context.Context, data []byte, contentType string) (string, string, error) {
	if f.failUpload {
		return "", "", errors.New("s3 down")
	}
	f.uploads++
	f.lastUploaded = data
	key := uuid.New().String()
	return "https://media.test/" + key, key, nil
}

func (f *fakeMedia) DeleteImage(ctx context.Context, key string) error {
	if f.failDelete {
		return errors.New("s3 down")
	}
	f.deleted = append(f.deleted, key)
	return nil
}

type fakeCache struct {
	invalidated []string
}

func (f *fakeCache) InvalidateFeed(ctx context.Context, userID string) error {
	f.invalidated = append(f.invalidated, userID)
	return nil
}

func contextFor(userID uuid.UUID) context.Context {
	return middleware.SetUserID(context.Background(), userID.String())
}

func TestCreatePostTextOnly(t *testing.T) {
	author := uuid.New()
	store := newFakeStore()
	media := &fakeMedia{}
	cache := &fakeCache{}
	service := NewPostService(store, media, cache, zap.NewNop())

	created, err := service.CreatePost(contextFor(author), "hello", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "hello", created.Content)
	assert.Empty(t, created.ImageURL)
	assert.Empty(t, created.ImageKey)
	assert.Empty(t, created.Comments)
	assert.Empty(t, created.Likes)
	assert.Equal(t, 0, media.uploads)
	assert.Equal(t, []string{author.String()}, cache.invalidated)
}

func TestCreatePostRejectsEmptyPayload(t *testing.T) {
	service := NewPostService(newFakeStore(), &fakeMedia{}, &fakeCache{}, zap.NewNop())

	_, err := service.CreatePost(contextFor(uuid.New()), "", nil, "")
	assert.True(t, lib.IsInvalidRequest(err))
}

func TestCreatePostWithImageSetsBothFields(t *testing.T) {
	store := newFakeStore()
	media := &fakeMedia{}
	service := NewPostService(store, media, &fakeCache{}, zap.NewNop())

	created, err := service.CreatePost(contextFor(uuid.New()), "", []byte{1, 2, 3}, "image/png")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ImageURL)
	assert.NotEmpty(t, created.ImageKey)
	assert.Equal(t, 1, media.uploads)
}

func TestCreatePostUploadFailureAborts(t *testing.T) {
	store := newFakeStore()
	service := NewPostService(store, &fakeMedia{failUpload: true}, &fakeCache{}, zap.NewNop())

	_, err := service.CreatePost(contextFor(uuid.New()), "hello", []byte{1}, "image/png")
	assert.True(t, lib.IsExternalDependency(err))
	assert.Empty(t, store.posts)
}

func TestUpdatePostNotOwnerRejected(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()
	post := &orm.Post{ID: uuid.New(), AuthorID: author, Content: "mine"}
	store := newFakeStore(post)
	service := NewPostService(store, &fakeMedia{}, &fakeCache{}, zap.NewNop())

	newContent := "stolen"
	_, err := service.UpdatePost(contextFor(stranger), post.ID.String(), &newContent, nil, "")
	assert.True(t, lib.IsNotAuthorized(err))

	kept, _ := store.SelectPostByID(post.ID.String())
	assert.Equal(t, "mine", kept.Content)
}

func TestUpdatePostReplacesImagePair(t *testing.T) {
	author := uuid.New()
	post := &orm.Post{ID: uuid.New(), AuthorID: author, ImageURL: "https://media.test/old", ImageKey: "old"}
	store := newFakeStore(post)
	media := &fakeMedia{}
	service := NewPostService(store, media, &fakeCache{}, zap.NewNop())

	updated, err := service.UpdatePost(contextFor(author), post.ID.String(), nil, []byte{9}, "image/jpeg")
	require.NoError(t, err)
	assert.NotEqual(t, "old", updated.ImageKey)
	assert.NotEmpty(t, updated.ImageURL)
	assert.Equal(t, []string{"old"}, media.deleted)
}

func TestUpdatePostOldImageDeleteFailureTolerated(t *testing.T) {
	author := uuid.New()
	post := &orm.Post{ID: uuid.New(), AuthorID: author, ImageURL: "https://media.test/old", ImageKey: "old"}
	store := newFakeStore(post)
	media := &fakeMedia{failDelete: true}
	service := NewPostService(store, media, &fakeCache{}, zap.NewNop())

	updated, err := service.UpdatePost(contextFor(author), post.ID.String(), nil, []byte{9}, "image/jpeg")
	require.NoError(t, err)
	// The new pair is in place even though the old asset leaked.
	assert.NotEqual(t, "old", updated.ImageKey)
	assert.NotEmpty(t, updated.ImageURL)
}

func TestUpdatePostContentOnlyLeavesImageUntouched(t *testing.T) {
	author := uuid.New()
	post := &orm.Post{ID: uuid.New(), AuthorID: author, Content: "old", ImageURL: "https://media.test/keep", ImageKey: "keep"}
	store := newFakeStore(post)
	media := &fakeMedia{}
	service := NewPostService(store, media, &fakeCache{}, zap.NewNop())

	newContent := "new"
	updated, err := service.UpdatePost(contextFor(author), post.ID.String(), &newContent, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Content)
	assert.Equal(t, "keep", updated.ImageKey)
	assert.Equal(t, "https://media.test/keep", updated.ImageURL)
	assert.Empty(t, media.deleted)
}

func TestDeletePostNotOwnerRejected(t *testing.T) {
	author := uuid.New()
	post := &orm.Post{ID: uuid.New(), AuthorID: author, Content: "mine"}
	store := newFakeStore(post)
	service := NewPostService(store, &fakeMedia{}, &fakeCache{}, zap.NewNop())

	err := service.DeletePost(contextFor(uuid.New()), post.ID.String())
	assert.True(t, lib.IsNotAuthorized(err))

	kept, selectErr := store.SelectPostByID(post.ID.String())
	require.NoError(t, selectErr)
	assert.Equal(t, "mine", kept.Content)
}

func TestDeletePostAbortsWhenImageDeleteFails(t *testing.T) {
	author := uuid.New()
	post := &orm.Post{ID: uuid.New(), AuthorID: author, ImageURL: "https://media.test/x", ImageKey: "x"}
	store := newFakeStore(post)
	service := NewPostService(store, &fakeMedia{failDelete: true}, &fakeCache{}, zap.NewNop())

	err := service.DeletePost(contextFor(author), post.ID.String())
	assert.True(t, lib.IsExternalDependency(err))

	// The post must still be retrievable: nothing partially applied.
	_, selectErr := store.SelectPostByID(post.ID.String())
	assert.NoError(t, selectErr)
}

func TestDeletePostReleasesImageThenRecord(t *testing.T) {
	author := uuid.New()
	post := &orm.Post{ID: uuid.New(), AuthorID: author, ImageURL: "https://media.test/x", ImageKey: "x"}
	store := newFakeStore(post)
	media := &fakeMedia{}
	cache := &fakeCache{}
	service := NewPostService(store, media, cache, zap.NewNop())

	err := service.DeletePost(contextFor(author), post.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, media.deleted)
	assert.Empty(t, store.posts)
	assert.Equal(t, []string{author.String()}, cache.invalidated)
}

func TestDeleteMissingPost(t *testing.T) {
	service := NewPostService(newFakeStore(), &fakeMedia{}, &fakeCache{}, zap.NewNop())

	err := service.DeletePost(contextFor(uuid.New()), uuid.New().String())
	assert.True(t, lib.IsNotFound(err))
}
