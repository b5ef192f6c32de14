package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/empowerup/empowerup-api/internal/core/domain"
)

// SessionStore keeps opaque session-id → user-id mappings in Redis.
// Key format: session:<uuid>. Entries expire server-side after the TTL, so a
// session that is never explicitly destroyed still dies on its own.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Create mints a new session for userID and returns its identifier.
func (s *SessionStore) Create(ctx context.Context, userID string) (string, error) {
	id := uuid.NewString()
	if err := s.client.Set(ctx, s.key(id), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return id, nil
}

// Get resolves a session id to a user id. Each hit refreshes the TTL so an
// active browser session slides forward instead of expiring mid-use.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (string, error) {
	userID, err := s.client.GetEx(ctx, s.key(sessionID), s.ttl).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrSessionNotFound
		}
		return "", fmt.Errorf("get session: %w", err)
	}
	return userID, nil
}

// Delete removes a session. Deleting an absent session is not an error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(id string) string {
	return "session:" + id
}
