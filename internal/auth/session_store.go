package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mabar/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStoreInterface defines the interface for active session tracking.
type SessionStoreInterface interface {
	MarkActive(ctx context.Context, userID uint, ttl time.Duration) error
	ActiveUserIDs(ctx context.Context) ([]uint, error)
}

// SessionStore records which users hold a live token, backed by Redis keys
// that expire together with the token.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// MarkActive records a live session for the user until the token expires.
func (s *SessionStore) MarkActive(ctx context.Context, userID uint, ttl time.Duration) error {
	key := fmt.Sprintf("%s%d", sessionKeyPrefix, userID)
	return s.cache.Set(ctx, key, []byte("1"), ttl)
}

// ActiveUserIDs lists user ids with a live session. Redis being unreachable
// behaves as no active sessions.
func (s *SessionStore) ActiveUserIDs(ctx context.Context) ([]uint, error) {
	keys, err := s.cache.ScanKeys(ctx, sessionKeyPrefix+"*")
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(keys))
	for _, key := range keys {
		raw := strings.TrimPrefix(key, sessionKeyPrefix)
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
