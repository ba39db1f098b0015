package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Phin0508/eamts-sub003/internal/domain"
)

// ErrSessionNotFound indicates an expired or unknown session id.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists request identities between requests.
type SessionStore interface {
	Create(ctx context.Context, userID int64, role domain.Role) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type sessionRecord struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore returns a Redis-backed session store.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &redisSessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *redisSessionStore) Create(ctx context.Context, userID int64, role domain.Role) (*Session, error) {
	id := uuid.NewString()
	payload, err := json.Marshal(sessionRecord{UserID: userID, Role: role})
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, sessionKey(id), payload, s.ttl).Err(); err != nil {
		return nil, err
	}
	return &Session{ID: id, UserID: userID, Role: role}, nil
}

func (s *redisSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	var record sessionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, err
	}
	return &Session{ID: id, UserID: record.UserID, Role: record.Role}, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
