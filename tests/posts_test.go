package tests

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/linkstream-org/backend/internal/orm"
	"github.com/linkstream-org/backend/tests/fixtures"
)

func TestPostLifecycle(t *testing.T) {
	author := fixtures.GetTestUser(1)
	commenter := fixtures.GetTestUser(2)
	require.NoError(t, db.InsertUser(author))
	require.NoError(t, db.InsertUser(commenter))

	post := fixtures.GetTestPost(author.ID)
	require.NoError(t, db.InsertPost(post))

	loaded, err := db.SelectPostByID(post.ID.String())
	require.NoError(t, err)
	assert.Equal(t, post.Content, loaded.Content)
	assert.Equal(t, author.Name, loaded.Author.Name)
	assert.Equal(t, author.Username, loaded.Author.Username)
	assert.Empty(t, loaded.Comments)
	assert.Empty(t, loaded.Likes)

	comment := fixtures.GetTestComment(post.ID, commenter.ID)
	require.NoError(t, db.InsertComment(comment))

	loaded, err = db.SelectPostByID(post.ID.String())
	require.NoError(t, err)
	require.Len(t, loaded.Comments, 1)
	assert.Equal(t, comment.Content, loaded.Comments[0].Content)
	assert.Equal(t, commenter.Name, loaded.Comments[0].Author.Name)
}

func TestCommentsKeepInsertionOrder(t *testing.T) {
	author := fixtures.GetTestUser(3)
	require.NoError(t, db.InsertUser(author))

	post := fixtures.GetTestPost(author.ID)
	require.NoError(t, db.InsertPost(post))

	contents := []string{"first", "second", "third"}
	base := time.Now().Add(-time.Minute)
	for i, content := range contents {
		comment := fixtures.GetTestComment(post.ID, author.ID)
		comment.Content = content
		comment.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, db.InsertComment(comment))
	}

	loaded, err := db.SelectPostByID(post.ID.String())
	require.NoError(t, err)
	require.Len(t, loaded.Comments, len(contents))
	for i, content := range contents {
		assert.Equal(t, content, loaded.Comments[i].Content)
	}
}

func TestPostLikeUniqueness(t *testing.T) {
	author := fixtures.GetTestUser(4)
	liker := fixtures.GetTestUser(5)
	require.NoError(t, db.InsertUser(author))
	require.NoError(t, db.InsertUser(liker))

	post := fixtures.GetTestPost(author.ID)
	require.NoError(t, db.InsertPost(post))

	require.NoError(t, db.InsertPostLike(&orm.PostLike{PostID: post.ID, UserID: liker.ID}))

	// The (post_id, user_id) unique index rejects a second membership row.
	err := db.InsertPostLike(&orm.PostLike{PostID: post.ID, UserID: liker.ID})
	assert.Error(t, err)

	like, err := db.SelectPostLike(post.ID.String(), liker.ID.String())
	require.NoError(t, err)
	require.NoError(t, db.DeletePostLike(like))

	_, err = db.SelectPostLike(post.ID.String(), liker.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Gone from the set, liking again is legal.
	require.NoError(t, db.InsertPostLike(&orm.PostLike{PostID: post.ID, UserID: liker.ID}))
}

func TestDeletePostCascades(t *testing.T) {
	author := fixtures.GetTestUser(6)
	engager := fixtures.GetTestUser(7)
	require.NoError(t, db.InsertUser(author))
	require.NoError(t, db.InsertUser(engager))

	post := fixtures.GetTestImagePost(author.ID)
	require.NoError(t, db.InsertPost(post))
	require.NoError(t, db.InsertComment(fixtures.GetTestComment(post.ID, engager.ID)))
	require.NoError(t, db.InsertPostLike(&orm.PostLike{PostID: post.ID, UserID: engager.ID}))

	loaded, err := db.SelectPostByID(post.ID.String())
	require.NoError(t, err)
	require.NoError(t, db.DeletePost(loaded))

	_, err = db.SelectPostByID(post.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = db.SelectPostLike(post.ID.String(), engager.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFeedScopedToAuthors(t *testing.T) {
	viewer := fixtures.GetTestUser(8)
	connection := fixtures.GetTestUser(9)
	stranger := fixtures.GetTestUser(10)
	require.NoError(t, db.InsertUser(viewer))
	require.NoError(t, db.InsertUser(connection))
	require.NoError(t, db.InsertUser(stranger))
	require.NoError(t, db.InsertConnection(fixtures.GetTestConnection(viewer.ID, connection.ID)))

	base := time.Now().Add(-time.Hour)
	ownPost := fixtures.GetTestPost(viewer.ID)
	ownPost.CreatedAt = base
	connectionPost := fixtures.GetTestPost(connection.ID)
	connectionPost.CreatedAt = base.Add(time.Minute)
	strangerPost := fixtures.GetTestPost(stranger.ID)
	strangerPost.CreatedAt = base.Add(2 * time.Minute)
	for _, post := range []*orm.Post{ownPost, connectionPost, strangerPost} {
		require.NoError(t, db.InsertPost(post))
	}

	connectionIDs, err := db.SelectConnectionIDs(viewer.ID.String())
	require.NoError(t, err)
	require.Len(t, connectionIDs, 1)
	assert.Equal(t, connection.ID, connectionIDs[0])

	authorIDs := append(connectionIDs, viewer.ID)
	posts, err := db.SelectPostsByAuthorIDs(authorIDs, "", 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	// Newest first, the stranger's post never appears.
	assert.Equal(t, connectionPost.ID, posts[0].ID)
	assert.Equal(t, ownPost.ID, posts[1].ID)
}

func TestFeedKeysetPagination(t *testing.T) {
	author := fixtures.GetTestUser(11)
	require.NoError(t, db.InsertUser(author))

	base := time.Now().Add(-time.Hour)
	var inserted []*orm.Post
	for i := 0; i < 5; i++ {
		post := fixtures.GetTestPost(author.ID)
		post.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.InsertPost(post))
		inserted = append(inserted, post)
	}

	authorIDs := []uuid.UUID{author.ID}
	firstPage, err := db.SelectPostsByAuthorIDs(authorIDs, "", 2)
	require.NoError(t, err)
	require.Len(t, firstPage, 2)
	assert.Equal(t, inserted[4].ID, firstPage[0].ID)
	assert.Equal(t, inserted[3].ID, firstPage[1].ID)

	cursor := firstPage[len(firstPage)-1].ID.String()
	secondPage, err := db.SelectPostsByAuthorIDs(authorIDs, cursor, 2)
	require.NoError(t, err)
	require.Len(t, secondPage, 2)
	assert.Equal(t, inserted[2].ID, secondPage[0].ID)
	assert.Equal(t, inserted[1].ID, secondPage[1].ID)
}

func TestNotificationsNewestFirst(t *testing.T) {
	recipient := fixtures.GetTestUser(12)
	actor := fixtures.GetTestUser(13)
	require.NoError(t, db.InsertUser(recipient))
	require.NoError(t, db.InsertUser(actor))

	post := fixtures.GetTestPost(recipient.ID)
	require.NoError(t, db.InsertPost(post))

	base := time.Now().Add(-time.Minute)
	for i, kind := range []string{orm.NotificationKindLike, orm.NotificationKindComment} {
		require.NoError(t, db.InsertNotification(&orm.Notification{
			RecipientID: recipient.ID,
			Kind:        kind,
			ActorID:     actor.ID,
			PostID:      post.ID,
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}))
	}

	notifications, err := db.SelectNotificationsByRecipient(recipient.ID.String(), 10)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, orm.NotificationKindComment, notifications[0].Kind)
	assert.Equal(t, orm.NotificationKindLike, notifications[1].Kind)
	assert.Equal(t, actor.Name, notifications[0].Actor.Name)
	assert.False(t, notifications[0].Read)
}
