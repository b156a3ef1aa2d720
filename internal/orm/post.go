package orm

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/linkstream-org/backend/internal/lib"
)

// Post is the aggregate this backend is built around: text and/or one image,
// an append-only ordered comment list and a liker set. ImageURL and ImageKey
// are a pair — both set when an image is attached, both empty otherwise. The
// key addresses the asset in the object store independently of the URL
// served to clients.
type Post struct {
	ID        uuid.UUID `gorm:"primaryKey"`
	AuthorID  uuid.UUID `gorm:"index"`
	Author    User      `gorm:"foreignKey:AuthorID"`
	Content   string
	ImageURL  string
	ImageKey  string
	Comments  []Comment  `gorm:"constraint:OnDelete:CASCADE"`
	Likes     []PostLike `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Post) TableName() string {
	return "post"
}

// Validate enforces the aggregate invariants: at least one of content and
// image present, and the image URL/key pair never half-set.
func (p *Post) Validate() error {
	if p.Content == "" && p.ImageURL == "" {
		return errors.New("post needs content or an image")
	}
	if (p.ImageURL == "") != (p.ImageKey == "") {
		return errors.New("post image url and key must be set together")
	}
	return nil
}

func (p *Post) BeforeCreate(transaction *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return p.Validate()
}

func (p *Post) BeforeUpdate(transaction *gorm.DB) error {
	return p.Validate()
}

func (p Post) GetID() uuid.UUID {
	return p.ID
}

func (p Post) GetCreatedAt() time.Time {
	return p.CreatedAt
}

// HasImage reports whether an external image asset is attached.
func (p *Post) HasImage() bool {
	return p.ImageKey != ""
}

// LikedBy reports whether the user is currently in the liker set.
func (p *Post) LikedBy(userID uuid.UUID) bool {
	for _, like := range p.Likes {
		if like.UserID == userID {
			return true
		}
	}
	return false
}

func preloadPostAssociations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Comments.Author").
		Preload("Likes")
}

func (c *PostgresClient) SelectPostByID(id string) (*Post, error) {
	var post Post
	tx := preloadPostAssociations(c.database).
		Where("id = ?", id).
		First(&post)

	if tx.Error != nil {
		return nil, tx.Error
	}

	return &post, nil
}

// SelectPostsByAuthorIDs returns posts authored by any of the given
// identities, newest first, keyset-paginated by cursor.
func (c *PostgresClient) SelectPostsByAuthorIDs(authorIDs []uuid.UUID, cursor string, limit int) ([]*Post, error) {
	var posts []*Post
	query := preloadPostAssociations(c.database).
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC, id DESC")

	paginatedQuery, err := lib.Paginate[Post](c.database, query, cursor, limit)
	if err != nil {
		return nil, err
	}

	tx := paginatedQuery.Find(&posts)
	if tx.Error != nil {
		return nil, tx.Error
	}

	return posts, nil
}

func (c *PostgresClient) InsertPost(post *Post) error {
	transaction := c.database.Create(post)
	return transaction.Error
}

// UpdatePost persists the post's own columns; comments and likes are owned
// by their respective insert/delete paths and never written here.
func (c *PostgresClient) UpdatePost(post *Post) error {
	tx := c.database.Model(post).
		Omit("Author").Omit("Comments").Omit("Likes").
		Select("content", "image_url", "image_key", "updated_at").
		Updates(post)
	return tx.Error
}

func (c *PostgresClient) DeletePost(post *Post) error {
	tx := c.database.Select("Comments", "Likes").Delete(post)
	return tx.Error
}
