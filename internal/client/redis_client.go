package client

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// feedCacheTTL bounds staleness for connections whose cached feed cannot be
// invalidated cheaply when someone else posts.
const feedCacheTTL = 2 * time.Minute

// RedisClient caches the first page of each user's assembled feed.
type RedisClient struct {
	redisClient *redis.Client
}

func NewRedisClient(ctx context.Context, host string, port string, password string) (*RedisClient, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       0,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{
		redisClient: redisClient,
	}, nil
}

func feedKey(userID string) string {
	return "feed:" + userID
}

// CacheFeed stores the serialized first feed page for a user.
func (c *RedisClient) CacheFeed(ctx context.Context, userID string, payload []byte) error {
	return c.redisClient.Set(ctx, feedKey(userID), payload, feedCacheTTL).Err()
}

// GetCachedFeed returns the cached feed page, or (nil, nil) on a miss.
func (c *RedisClient) GetCachedFeed(ctx context.Context, userID string) ([]byte, error) {
	payload, err := c.redisClient.Get(ctx, feedKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// InvalidateFeed drops a user's cached feed after one of their posts
// changes.
func (c *RedisClient) InvalidateFeed(ctx context.Context, userID string) error {
	return c.redisClient.Del(ctx, feedKey(userID)).Err()
}

func (c *RedisClient) Close() error {
	return c.redisClient.Close()
}
