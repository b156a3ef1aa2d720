package orm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a value record owned by exactly one post. The list is
// append-only: comments are never edited, reordered or individually deleted,
// they only disappear when their post does.
type Comment struct {
	ID        uuid.UUID `gorm:"primaryKey"`
	PostID    uuid.UUID `gorm:"index"`
	AuthorID  uuid.UUID
	Author    User `gorm:"foreignKey:AuthorID"`
	Content   string
	CreatedAt time.Time
}

func (c *Comment) TableName() string {
	return "comment"
}

func (c *Comment) BeforeCreate(transaction *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *PostgresClient) InsertComment(comment *Comment) error {
	transaction := c.database.Create(comment)
	return transaction.Error
}
