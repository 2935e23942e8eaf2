package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/authkit/pkg/session"
)

// DefaultPrefix namespaces session keys.
const DefaultPrefix = "session:"

// SessionStore implements session.Store on Redis. Each session is one key
// holding the user id, with a TTL equal to the remaining lifetime, so Redis
// expires sessions itself and no sweep is needed.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// Option configures a SessionStore.
type Option func(*SessionStore)

func WithPrefix(prefix string) Option {
	return func(s *SessionStore) {
		s.prefix = prefix
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *SessionStore) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSessionStore(client redis.UniversalClient, opts ...Option) *SessionStore {
	if client == nil {
		panic("redisstore: client is required")
	}
	s := &SessionStore{
		client: client,
		prefix: DefaultPrefix,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create writes the session with a TTL of expiresAt minus now.
// A session that is already expired is not written.
func (s *SessionStore) Create(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, s.key(token), userID.String(), ttl).Err()
}

func (s *SessionStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, session.ErrSessionNotFound
		}
		return uuid.Nil, err
	}
	userID, err := uuid.Parse(val)
	if err != nil {
		// A foreign value under our prefix is not a usable session.
		return uuid.Nil, session.ErrSessionNotFound
	}
	return userID, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}

func (s *SessionStore) key(token string) string {
	return s.prefix + token
}
