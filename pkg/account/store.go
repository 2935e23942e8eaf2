package account

import (
	"context"

	"github.com/google/uuid"
)

// Store persists accounts.
type Store interface {
	// CreateUser inserts u; ErrUsernameTaken when the username exists.
	CreateUser(ctx context.Context, u User) error
	// GetUserByUsername returns ErrUserNotFound when absent.
	GetUserByUsername(ctx context.Context, username string) (User, error)
	// UsernameByID returns ErrUserNotFound when absent.
	UsernameByID(ctx context.Context, id uuid.UUID) (string, error)
}
