package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is a persisted session.
type Record struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the record is no longer valid at now.
func (r Record) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// Store persists sessions keyed by token.
// Implementations must pass the token as a bound parameter or key,
// never as query text.
type Store interface {
	// Create persists a session.
	Create(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error
	// Resolve returns the owner of an unexpired session.
	// Absent and expired sessions both yield ErrSessionNotFound.
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
	// Delete removes a session. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}

// ExpiredCleaner is implemented by stores that can sweep expired rows.
// The Manager uses it when a cleanup interval is configured.
type ExpiredCleaner interface {
	DeleteExpired(ctx context.Context) (int64, error)
}
