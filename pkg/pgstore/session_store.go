package pgstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/pg"
	"github.com/dmitrymomot/authkit/pkg/session"
)

const (
	insertSessionQuery = `INSERT INTO sessions (token, user_id, expires_at) VALUES ($1, $2, $3)`

	// The expiry filter runs in the database so an expired row is never returned.
	resolveSessionQuery = `SELECT user_id FROM sessions WHERE token = $1 AND expires_at > now()`

	deleteSessionQuery = `DELETE FROM sessions WHERE token = $1`

	deleteExpiredSessionsQuery = `DELETE FROM sessions WHERE expires_at <= now()`
)

// SessionStore implements session.Store and session.ExpiredCleaner on PostgreSQL.
type SessionStore struct {
	db DBTX
}

func NewSessionStore(db DBTX) *SessionStore {
	if db == nil {
		panic("pgstore: db is required")
	}
	return &SessionStore{db: db}
}

func (s *SessionStore) Create(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	_, err := s.db.Exec(ctx, insertSessionQuery, token, userID, expiresAt.UTC())
	return err
}

func (s *SessionStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	var userID uuid.UUID
	if err := s.db.QueryRow(ctx, resolveSessionQuery, token).Scan(&userID); err != nil {
		if pg.IsNotFoundError(err) {
			return uuid.Nil, session.ErrSessionNotFound
		}
		return uuid.Nil, err
	}
	return userID, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	_, err := s.db.Exec(ctx, deleteSessionQuery, token)
	return err
}

func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, deleteExpiredSessionsQuery)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
