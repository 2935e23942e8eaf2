package session

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the authenticated user behind a request.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

type identityContextKey struct{}

// WithIdentity adds an identity to the context
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext retrieves the identity stored by Middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}

// UsernameFromContext returns the logged-in username, or false for anonymous requests.
func UsernameFromContext(ctx context.Context) (string, bool) {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return "", false
	}
	return id.Username, true
}

// UserIDFromContext returns the logged-in user id, or false for anonymous requests.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return id.UserID, true
}
