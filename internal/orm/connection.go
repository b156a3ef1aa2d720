package orm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserConnection is one edge of the connection graph: user -> connection.
// The graph itself is managed by the identity service; this backend only
// reads it to scope the feed.
type UserConnection struct {
	ID           uuid.UUID `gorm:"primaryKey"`
	UserID       uuid.UUID `gorm:"uniqueIndex:idx_connection_edge"`
	User         User      `gorm:"foreignKey:UserID"`
	ConnectionID uuid.UUID `gorm:"uniqueIndex:idx_connection_edge"`
	Connection   User      `gorm:"foreignKey:ConnectionID"`
	CreatedAt    time.Time
}

func (u *UserConnection) TableName() string {
	return "user_connection"
}

func (u *UserConnection) BeforeCreate(transaction *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// SelectConnectionIDs returns the identities connected to the given user.
func (c *PostgresClient) SelectConnectionIDs(userID string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	tx := c.database.
		Model(&UserConnection{}).
		Where("user_id = ?", userID).
		Pluck("connection_id", &ids)

	if tx.Error != nil {
		return nil, tx.Error
	}

	return ids, nil
}

func (c *PostgresClient) InsertConnection(connection *UserConnection) error {
	transaction := c.database.Create(connection)
	return transaction.Error
}
