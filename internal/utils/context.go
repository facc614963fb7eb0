// Package utils provides small helpers shared by the transport layer:
// typed context keys, JSON response writing and a cookie-aware HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/go-recipe-book/models"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// SessionIDCtxKey holds the session id decoded from the request cookie,
	// whether or not the session store still knows it.
	SessionIDCtxKey = contextKey("sessionID")

	// UserIDCtxKey holds the user id bound to the request's session.
	UserIDCtxKey = contextKey("userID")

	// UserCtxKey holds the live user resolved from UserIDCtxKey.
	UserCtxKey = contextKey("user")
)

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the session's user id.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
