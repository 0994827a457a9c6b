package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/samratmajumder/oksaar-social-assistant/internal/database"
)

const (
	// SessionDuration is 7 days
	SessionDuration = 7 * 24 * time.Hour
	// SessionKeyPrefix is the Redis key prefix for sessions
	SessionKeyPrefix = "session:"
	// UserSessionKeyPrefix is the Redis key prefix for user->session mapping
	UserSessionKeyPrefix = "user_session:"
)

// GenerateToken returns a 32-byte random token in URL-safe base64.
func GenerateToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(tokenBytes), nil
}

// CreateSession creates a new bearer session for a user and stores it in
// Redis with a 7-day expiry. Any existing session for the user is
// invalidated first, so a fresh login always restarts the 7-day timer.
func CreateSession(userID string) (string, error) {
	InvalidateUserSessions(userID)

	sessionToken, err := GenerateToken()
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	sessionKey := SessionKeyPrefix + sessionToken
	userSessionKey := UserSessionKeyPrefix + userID

	if err := database.RedisClient.Set(ctx, sessionKey, userID, SessionDuration).Err(); err != nil {
		return "", err
	}

	if err := database.RedisClient.Set(ctx, userSessionKey, sessionToken, SessionDuration).Err(); err != nil {
		return "", err
	}

	return sessionToken, nil
}

// ValidateSession checks a bearer token and returns the user ID it
// identifies. The second return is false for unknown or expired tokens.
func ValidateSession(sessionToken string) (string, bool) {
	if sessionToken == "" {
		return "", false
	}

	ctx := context.Background()
	userID, err := database.RedisClient.Get(ctx, SessionKeyPrefix+sessionToken).Result()
	if err != nil || userID == "" {
		return "", false
	}

	return userID, true
}

// InvalidateSession removes a session from Redis (logout).
func InvalidateSession(sessionToken string) error {
	if sessionToken == "" {
		return fmt.Errorf("session token is empty")
	}

	ctx := context.Background()
	sessionKey := SessionKeyPrefix + sessionToken

	userID, err := database.RedisClient.Get(ctx, sessionKey).Result()
	if err == nil && userID != "" {
		database.RedisClient.Del(ctx, UserSessionKeyPrefix+userID)
	}

	return database.RedisClient.Del(ctx, sessionKey).Err()
}

// InvalidateUserSessions invalidates the active session for a user, if
// any. Called on every login so a user holds at most one live token.
func InvalidateUserSessions(userID string) error {
	ctx := context.Background()
	userSessionKey := UserSessionKeyPrefix + userID

	sessionToken, err := database.RedisClient.Get(ctx, userSessionKey).Result()
	if err == nil && sessionToken != "" {
		database.RedisClient.Del(ctx, SessionKeyPrefix+sessionToken)
	}

	return database.RedisClient.Del(ctx, userSessionKey).Err()
}
