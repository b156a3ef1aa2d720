package middleware

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type contextKey string

const userIDKey contextKey = "user_id"

// SetUserID attaches the authenticated user's ID to the request context.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserUUID returns the authenticated user's ID from the context. Every
// engagement and mutation operation starts here.
func GetUserUUID(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(userIDKey).(string)
	if !ok || value == "" {
		return uuid.Nil, errors.New("no authenticated user in context")
	}
	return uuid.Parse(value)
}
