package session

import (
	"net/http"

	"github.com/google/uuid"
)

// token reads the session token from the request cookies.
func (m *Manager) token(r *http.Request) string {
	token, _ := m.codec.FromRequest(r)
	return token
}

// IssueCookie starts a session and appends its Set-Cookie header to w.
func (m *Manager) IssueCookie(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error {
	header, err := m.Issue(r.Context(), userID)
	if err != nil {
		return err
	}
	w.Header().Add("Set-Cookie", header)
	return nil
}

// DestroyCookie deletes the request's session and always clears the cookie.
func (m *Manager) DestroyCookie(w http.ResponseWriter, r *http.Request) error {
	err := m.revoke(r.Context(), m.token(r))
	m.codec.Clear(w)
	return err
}

// Middleware puts the Identity of a valid session into the request context.
// Anonymous requests pass through untouched.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := m.identify(r.Context(), m.token(r))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

// RequireAuth is a middleware that requires an authenticated session
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}
		id, ok := m.identify(r.Context(), m.token(r))
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}
