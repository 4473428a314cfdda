package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"phorum/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStoreInterface defines the interface for session storage operations.
// A session token is live only while its session record exists here, so
// deleting the record is the server-side logout.
type SessionStoreInterface interface {
	StoreSession(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (userID uint, err error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// SessionStore handles storage and retrieval of sessions in Redis.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// StoreSession stores a session record in Redis with TTL.
func (s *SessionStore) StoreSession(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error {
	data := map[string]interface{}{
		"user_id": userID,
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal session data: %w", err)
	}

	key := sessionKeyPrefix + sessionID
	return s.cache.Set(ctx, key, payload, ttl)
}

// GetSession retrieves session data from Redis. A missing record means the
// session has ended or expired.
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (uint, error) {
	key := sessionKeyPrefix + sessionID
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return 0, fmt.Errorf("session not found")
	}

	var sessionData map[string]interface{}
	if err := json.Unmarshal(data, &sessionData); err != nil {
		return 0, fmt.Errorf("unmarshal session data: %w", err)
	}

	uid, ok := sessionData["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid user_id in session data")
	}
	return uint(uid), nil
}

// DeleteSession removes a session from Redis. Deleting an absent session is
// a no-op, which makes logout idempotent.
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	key := sessionKeyPrefix + sessionID
	return s.cache.Delete(ctx, key)
}
