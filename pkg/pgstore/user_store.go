package pgstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/account"
	"github.com/dmitrymomot/authkit/pkg/pg"
)

const (
	insertUserQuery = `INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`

	userByUsernameQuery = `SELECT id, username, password_hash, created_at FROM users WHERE username = $1`

	usernameByIDQuery = `SELECT username FROM users WHERE id = $1`
)

// UserStore implements account.Store on PostgreSQL.
type UserStore struct {
	db DBTX
}

func NewUserStore(db DBTX) *UserStore {
	if db == nil {
		panic("pgstore: db is required")
	}
	return &UserStore{db: db}
}

func (s *UserStore) CreateUser(ctx context.Context, u account.User) error {
	_, err := s.db.Exec(ctx, insertUserQuery, u.ID, u.Username, u.PasswordHash, u.CreatedAt)
	if pg.IsDuplicateKeyError(err) {
		return account.ErrUsernameTaken
	}
	return err
}

func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (account.User, error) {
	var u account.User
	err := s.db.QueryRow(ctx, userByUsernameQuery, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return account.User{}, account.ErrUserNotFound
		}
		return account.User{}, err
	}
	return u, nil
}

func (s *UserStore) UsernameByID(ctx context.Context, id uuid.UUID) (string, error) {
	var username string
	if err := s.db.QueryRow(ctx, usernameByIDQuery, id).Scan(&username); err != nil {
		if pg.IsNotFoundError(err) {
			return "", account.ErrUserNotFound
		}
		return "", err
	}
	return username, nil
}
