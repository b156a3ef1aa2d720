package fixtures

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/linkstream-org/backend/internal/orm"
)

// GetTestUser returns a user with a deterministic identity so tests can
// reference it by ID. The n suffix keeps the unique username and email
// columns happy when a test needs several users.
func GetTestUser(n int) *orm.User {
	return &orm.User{
		ID:             uuid.New(),
		Name:           fmt.Sprintf("Test User %d", n),
		Username:       fmt.Sprintf("testuser%d-%s", n, uuid.NewString()[:8]),
		Email:          fmt.Sprintf("testuser%d-%s@example.com", n, uuid.NewString()[:8]),
		ProfilePicture: "https://cdn.example.com/avatars/default.png",
		Headline:       "Software Engineer at Example",
		CreatedAt:      time.Now().Add(-24 * time.Hour),
	}
}

// GetTestConnection returns one directed connection edge between two users.
func GetTestConnection(userID uuid.UUID, connectionID uuid.UUID) *orm.UserConnection {
	return &orm.UserConnection{
		ID:           uuid.New(),
		UserID:       userID,
		ConnectionID: connectionID,
		CreatedAt:    time.Now().Add(-12 * time.Hour),
	}
}

// GetTestPost returns a text-only post authored by the given user.
func GetTestPost(authorID uuid.UUID) *orm.Post {
	return &orm.Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Content:   "This is the content of the test post.",
		CreatedAt: time.Now().Add(-6 * time.Hour),
	}
}

// GetTestImagePost returns a post carrying an image URL/key pair.
func GetTestImagePost(authorID uuid.UUID) *orm.Post {
	key := "posts/" + uuid.NewString()
	return &orm.Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Content:   "Look at this.",
		ImageURL:  "https://media.example.com/" + key,
		ImageKey:  key,
		CreatedAt: time.Now().Add(-3 * time.Hour),
	}
}

// GetTestComment returns a comment on the given post by the given user.
func GetTestComment(postID uuid.UUID, authorID uuid.UUID) *orm.Comment {
	return &orm.Comment{
		ID:       uuid.New(),
		PostID:   postID,
		AuthorID: authorID,
		Content:  "Great post, thanks for sharing.",
	}
}
