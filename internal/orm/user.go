package orm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User carries the profile fields this backend projects into feeds and
// notification emails. Account lifecycle (signup, credentials, connection
// management) belongs to the identity service.
type User struct {
	ID             uuid.UUID `gorm:"primaryKey"`
	Name           string
	Username       string `gorm:"uniqueIndex"`
	Email          string `gorm:"uniqueIndex"`
	ProfilePicture string
	Headline       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (u *User) TableName() string {
	return "user"
}

func (u *User) BeforeCreate(transaction *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (c *PostgresClient) SelectUserByID(id string) (*User, error) {
	var user User
	tx := c.database.
		Where("id = ?", id).
		First(&user)

	if tx.Error != nil {
		return nil, tx.Error
	}

	return &user, nil
}

func (c *PostgresClient) InsertUser(user *User) error {
	transaction := c.database.Create(user)
	return transaction.Error
}
