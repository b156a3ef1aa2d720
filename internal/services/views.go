package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/linkstream-org/backend/internal/orm"
)

// AuthorView is the display projection of a post's author.
type AuthorView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	ProfilePicture string    `json:"profile_picture"`
	Headline       string    `json:"headline"`
}

// CommentAuthorView is the commenter projection. Feed listings carry only
// name and picture; the single-post view fills in username and headline.
type CommentAuthorView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ProfilePicture string    `json:"profile_picture"`
	Username       string    `json:"username,omitempty"`
	Headline       string    `json:"headline,omitempty"`
}

type CommentView struct {
	ID        uuid.UUID         `json:"id"`
	Author    CommentAuthorView `json:"author"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"created_at"`
}

type PostView struct {
	ID        uuid.UUID     `json:"id"`
	Author    AuthorView    `json:"author"`
	Content   string        `json:"content,omitempty"`
	ImageURL  string        `json:"image_url,omitempty"`
	Comments  []CommentView `json:"comments"`
	Likes     []uuid.UUID   `json:"likes"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type NotificationView struct {
	ID        uuid.UUID         `json:"id"`
	Kind      string            `json:"kind"`
	Actor     CommentAuthorView `json:"actor"`
	PostID    uuid.UUID         `json:"post_id"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewPostView maps a loaded post aggregate to its display projection.
// detail selects the fuller commenter fields used on single-post fetch.
func NewPostView(post *orm.Post, detail bool) PostView {
	comments := make([]CommentView, 0, len(post.Comments))
	for _, comment := range post.Comments {
		comments = append(comments, newCommentView(&comment, detail))
	}

	likes := make([]uuid.UUID, 0, len(post.Likes))
	for _, like := range post.Likes {
		likes = append(likes, like.UserID)
	}

	return PostView{
		ID: post.ID,
		Author: AuthorView{
			ID:             post.Author.ID,
			Name:           post.Author.Name,
			Username:       post.Author.Username,
			ProfilePicture: post.Author.ProfilePicture,
			Headline:       post.Author.Headline,
		},
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		Comments:  comments,
		Likes:     likes,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// NewPostViews maps a feed page, preserving the order of the input.
func NewPostViews(posts []*orm.Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, NewPostView(post, false))
	}
	return views
}

func newCommentView(comment *orm.Comment, detail bool) CommentView {
	author := CommentAuthorView{
		ID:             comment.Author.ID,
		Name:           comment.Author.Name,
		ProfilePicture: comment.Author.ProfilePicture,
	}
	if detail {
		author.Username = comment.Author.Username
		author.Headline = comment.Author.Headline
	}

	return CommentView{
		ID:        comment.ID,
		Author:    author,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

// NewNotificationView maps a notification with its actor preloaded.
func NewNotificationView(notification *orm.Notification) NotificationView {
	return NotificationView{
		ID:   notification.ID,
		Kind: notification.Kind,
		Actor: CommentAuthorView{
			ID:             notification.Actor.ID,
			Name:           notification.Actor.Name,
			ProfilePicture: notification.Actor.ProfilePicture,
			Username:       notification.Actor.Username,
		},
		PostID:    notification.PostID,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	}
}
