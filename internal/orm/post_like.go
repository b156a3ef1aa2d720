package orm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostLike is one member of a post's liker set. The unique index over
// (post_id, user_id) gives the set its no-duplicates guarantee at the
// storage layer, so concurrent toggles cannot double-count an identity.
type PostLike struct {
	ID        uuid.UUID `gorm:"primaryKey"`
	PostID    uuid.UUID `gorm:"uniqueIndex:idx_post_like_once"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_post_like_once"`
	CreatedAt time.Time
}

func (p *PostLike) TableName() string {
	return "post_like"
}

func (p *PostLike) BeforeCreate(transaction *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (c *PostgresClient) SelectPostLike(postID string, userID string) (*PostLike, error) {
	var like PostLike
	tx := c.database.
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&like)

	if tx.Error != nil {
		return nil, tx.Error
	}

	return &like, nil
}

func (c *PostgresClient) InsertPostLike(like *PostLike) error {
	transaction := c.database.Create(like)
	return transaction.Error
}

func (c *PostgresClient) DeletePostLike(like *PostLike) error {
	tx := c.database.Delete(like)
	return tx.Error
}
