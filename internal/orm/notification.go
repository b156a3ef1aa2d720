package orm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationKindComment = "comment"
	NotificationKindLike    = "like"
)

// Notification records one qualifying engagement event directed at a post's
// author. Rows are append-only from this backend's perspective: repeated
// like toggles each append a fresh row, nothing is merged or updated, and
// the read flag is only ever flipped by the client-facing profile service.
type Notification struct {
	ID          uuid.UUID `gorm:"primaryKey"`
	RecipientID uuid.UUID `gorm:"index"`
	Recipient   User      `gorm:"foreignKey:RecipientID"`
	Kind        string
	ActorID     uuid.UUID
	Actor       User `gorm:"foreignKey:ActorID"`
	PostID      uuid.UUID
	Read        bool `gorm:"default:false"`
	CreatedAt   time.Time
}

func (n *Notification) TableName() string {
	return "notification"
}

func (n *Notification) BeforeCreate(transaction *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

func (c *PostgresClient) InsertNotification(notification *Notification) error {
	transaction := c.database.Create(notification)
	return transaction.Error
}

func (c *PostgresClient) SelectNotificationsByRecipient(recipientID string, limit int) ([]*Notification, error) {
	var notifications []*Notification
	tx := c.database.
		Where("recipient_id = ?", recipientID).
		Preload("Actor").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifications)

	if tx.Error != nil {
		return nil, tx.Error
	}

	return notifications, nil
}
