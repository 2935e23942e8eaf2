package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/session"
)

func whoAmI(w http.ResponseWriter, r *http.Request) {
	username, ok := session.UsernameFromContext(r.Context())
	if !ok {
		username = "Guest"
	}
	_, _ = w.Write([]byte(username))
}

func TestManager_HTTP(t *testing.T) {
	t.Parallel()
	f := setupManager(t)

	login := httptest.NewRecorder()
	require.NoError(t, f.manager.IssueCookie(login, httptest.NewRequest(http.MethodPost, "/login", nil), f.userID))
	cookies := login.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sessionID", cookies[0].Name)

	authed := httptest.NewRequest(http.MethodGet, "/", nil)
	authed.AddCookie(cookies[0])

	t.Run("middleware sets identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		f.manager.Middleware(http.HandlerFunc(whoAmI)).ServeHTTP(rec, authed)
		assert.Equal(t, "alice", rec.Body.String())

		rec = httptest.NewRecorder()
		f.manager.Middleware(http.HandlerFunc(whoAmI)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "Guest", rec.Body.String())
	})

	t.Run("require auth", func(t *testing.T) {
		rec := httptest.NewRecorder()
		f.manager.RequireAuth(http.HandlerFunc(whoAmI)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = httptest.NewRecorder()
		f.manager.RequireAuth(http.HandlerFunc(whoAmI)).ServeHTTP(rec, authed)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice", rec.Body.String())

		id, ok := session.UserIDFromContext(session.WithIdentity(authed.Context(), session.Identity{UserID: f.userID}))
		require.True(t, ok)
		assert.Equal(t, f.userID, id)
	})

	t.Run("destroy cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, f.manager.DestroyCookie(rec, authed))
		cleared := rec.Result().Cookies()
		require.Len(t, cleared, 1)
		assert.Empty(t, cleared[0].Value)

		rec = httptest.NewRecorder()
		f.manager.RequireAuth(http.HandlerFunc(whoAmI)).ServeHTTP(rec, authed)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestManager_HTTPSplitCookieHeaders(t *testing.T) {
	t.Parallel()
	f := setupManager(t)

	login := httptest.NewRecorder()
	require.NoError(t, f.manager.IssueCookie(login, httptest.NewRequest(http.MethodPost, "/login", nil), f.userID))
	issued := login.Result().Cookies()
	require.Len(t, issued, 1)

	// Session cookie arrives in the second of two Cookie header lines.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Add("Cookie", "theme=dark")
	req.Header.Add("Cookie", issued[0].Name+"="+issued[0].Value)

	rec := httptest.NewRecorder()
	f.manager.Middleware(http.HandlerFunc(whoAmI)).ServeHTTP(rec, req)
	assert.Equal(t, "alice", rec.Body.String())

	rec = httptest.NewRecorder()
	require.NoError(t, f.manager.DestroyCookie(rec, req))
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Zero(t, f.store.Len())

	rec = httptest.NewRecorder()
	require.NoError(t, f.manager.DestroyCookie(rec, httptest.NewRequest(http.MethodGet, "/logout", nil)))
	assert.Len(t, rec.Result().Cookies(), 1, "anonymous logout still clears the cookie")
}
