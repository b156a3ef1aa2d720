package orm

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PostgresClient struct {
	database *gorm.DB
}

func NewPostgresClient(host string, port string, user string, password string, name string) (*PostgresClient, error) {
	database, err := gorm.Open(
		postgres.Open(
			fmt.Sprintf(
				"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
				host,
				port,
				user,
				password,
				name,
			),
		),
		&gorm.Config{},
	)
	if err != nil {
		return nil, err
	}

	rawDatabase, err := database.DB()
	if err != nil {
		return nil, err
	}

	rawDatabase.SetMaxOpenConns(4)
	rawDatabase.SetMaxIdleConns(2)
	rawDatabase.SetConnMaxIdleTime(5 * time.Second)

	return &PostgresClient{
		database: database,
	}, nil
}

// Migrate creates or updates the schema for every model this backend owns,
// including the unique (post_id, user_id) index backing like-set semantics.
func (c *PostgresClient) Migrate() error {
	return c.database.AutoMigrate(
		&User{},
		&UserConnection{},
		&Post{},
		&Comment{},
		&PostLike{},
		&Notification{},
	)
}
