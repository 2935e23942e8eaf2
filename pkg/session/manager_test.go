package session_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/cookie"
	"github.com/dmitrymomot/authkit/pkg/session"
)

type users map[uuid.UUID]string

func (u users) UsernameByID(_ context.Context, id uuid.UUID) (string, error) {
	name, ok := u[id]
	if !ok {
		return "", errors.New("user not found")
	}
	return name, nil
}

// brokenStore fails every call with err.
type brokenStore struct{ err error }

func (s brokenStore) Create(context.Context, string, uuid.UUID, time.Time) error { return s.err }
func (s brokenStore) Resolve(context.Context, string) (uuid.UUID, error)         { return uuid.Nil, s.err }
func (s brokenStore) Delete(context.Context, string) error                       { return s.err }

// slowStore blocks until the call's context ends.
type slowStore struct{}

func (slowStore) Create(ctx context.Context, _ string, _ uuid.UUID, _ time.Time) error {
	<-ctx.Done()
	return ctx.Err()
}

func (slowStore) Resolve(ctx context.Context, _ string) (uuid.UUID, error) {
	<-ctx.Done()
	return uuid.Nil, ctx.Err()
}

func (slowStore) Delete(ctx context.Context, _ string) error {
	<-ctx.Done()
	return ctx.Err()
}

type fixture struct {
	clock   *clock
	store   *session.MemoryStore
	manager *session.Manager
	userID  uuid.UUID
}

func setupManager(t *testing.T, opts ...session.Option) fixture {
	t.Helper()

	clk := newClock()
	store := session.NewMemoryStore(session.WithStoreClock(clk.Now))
	userID := uuid.New()

	codec, err := cookie.New("sessionID")
	require.NoError(t, err)

	mgr := session.New(store, users{userID: "alice"}, codec,
		append([]session.Option{
			session.WithConfig(session.Config{TokenBytes: 32, Lifetime: time.Hour, StoreTimeout: time.Second}),
			session.WithClock(clk.Now),
		}, opts...)...,
	)
	t.Cleanup(func() { _ = mgr.Close() })

	return fixture{clock: clk, store: store, manager: mgr, userID: userID}
}

// requestHeader turns a Set-Cookie value into the Cookie header a browser would send.
func requestHeader(t *testing.T, setCookie string) string {
	t.Helper()
	c, err := http.ParseSetCookie(setCookie)
	require.NoError(t, err)
	return c.Name + "=" + c.Value + "; theme=dark"
}

func TestManager_New(t *testing.T) {
	t.Parallel()

	codec, err := cookie.New("sessionID")
	require.NoError(t, err)
	store := session.NewMemoryStore()

	assert.Panics(t, func() { session.New(nil, users{}, codec) })
	assert.Panics(t, func() { session.New(store, nil, codec) })
	assert.Panics(t, func() { session.New(store, users{}, nil) })
	assert.Panics(t, func() {
		session.New(store, users{}, codec, session.WithConfig(session.Config{Lifetime: -time.Hour}))
	})
}

func TestManager_IssueValidate(t *testing.T) {
	t.Parallel()
	f := setupManager(t)
	ctx := context.Background()

	header, err := f.manager.Issue(ctx, f.userID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(header, "sessionID="))
	assert.Contains(t, header, "; expires=Sat, 10 Jan 2026 13:00:00 GMT")
	assert.Contains(t, header, "; HttpOnly; SameSite=Lax; path=/")

	c, err := http.ParseSetCookie(header)
	require.NoError(t, err)
	assert.Len(t, c.Value, 64)

	username, ok := f.manager.Validate(ctx, requestHeader(t, header))
	require.True(t, ok)
	assert.Equal(t, "alice", username)
}

func TestManager_ValidateAnonymous(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no header", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		username, ok := f.manager.Validate(ctx, "")
		assert.False(t, ok)
		assert.Empty(t, username)
	})

	t.Run("other cookies only", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		_, ok := f.manager.Validate(ctx, "theme=dark; lang=en")
		assert.False(t, ok)
	})

	t.Run("empty value", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		_, ok := f.manager.Validate(ctx, "sessionID=")
		assert.False(t, ok)
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		_, ok := f.manager.Validate(ctx, "sessionID=0123456789abcdef")
		assert.False(t, ok)
	})

	t.Run("expired session", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		header, err := f.manager.Issue(ctx, f.userID)
		require.NoError(t, err)

		f.clock.Advance(time.Hour)
		_, ok := f.manager.Validate(ctx, requestHeader(t, header))
		assert.False(t, ok)
	})

	t.Run("owner no longer exists", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		header, err := f.manager.Issue(ctx, uuid.New())
		require.NoError(t, err)

		_, ok := f.manager.Validate(ctx, requestHeader(t, header))
		assert.False(t, ok)
	})

	t.Run("store failure is logged", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		codec, err := cookie.New("sessionID")
		require.NoError(t, err)
		mgr := session.New(brokenStore{err: errors.New("connection reset")}, users{}, codec,
			session.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		)
		defer mgr.Close()

		_, ok := mgr.Validate(ctx, "sessionID=abc")
		assert.False(t, ok)
		assert.Contains(t, buf.String(), "connection reset")
		assert.Contains(t, buf.String(), "component=session")
	})
}

func TestManager_Destroy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("destroy then validate", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		header, err := f.manager.Issue(ctx, f.userID)
		require.NoError(t, err)
		reqHeader := requestHeader(t, header)

		expired, err := f.manager.Destroy(ctx, reqHeader)
		require.NoError(t, err)
		assert.Equal(t, "sessionID=; expires=Thu, 01 Jan 1970 00:00:00 GMT; HttpOnly; SameSite=Lax; path=/", expired)

		_, ok := f.manager.Validate(ctx, reqHeader)
		assert.False(t, ok)
		assert.Zero(t, f.store.Len())
	})

	t.Run("without session still expires cookie", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		expired, err := f.manager.Destroy(ctx, "")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(expired, "sessionID=;"))

		_, err = f.manager.Destroy(ctx, "sessionID=already-gone")
		require.NoError(t, err)
	})

	t.Run("store failure is reported", func(t *testing.T) {
		t.Parallel()
		codec, err := cookie.New("sessionID")
		require.NoError(t, err)
		boom := errors.New("connection reset")
		mgr := session.New(brokenStore{err: boom}, users{}, codec)
		defer mgr.Close()

		expired, err := mgr.Destroy(ctx, "sessionID=abc")
		assert.ErrorIs(t, err, session.ErrStoreUnavailable)
		assert.ErrorIs(t, err, boom)
		assert.NotEmpty(t, expired)
	})
}

func TestManager_IssueFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	codec, err := cookie.New("sessionID")
	require.NoError(t, err)

	t.Run("store unavailable", func(t *testing.T) {
		t.Parallel()
		mgr := session.New(brokenStore{err: errors.New("down")}, users{}, codec)
		defer mgr.Close()

		header, err := mgr.Issue(ctx, uuid.New())
		assert.ErrorIs(t, err, session.ErrStoreUnavailable)
		assert.Empty(t, header)
	})

	t.Run("store timeout", func(t *testing.T) {
		t.Parallel()
		mgr := session.New(slowStore{}, users{}, codec,
			session.WithConfig(session.Config{StoreTimeout: 20 * time.Millisecond}),
		)
		defer mgr.Close()

		start := time.Now()
		_, err := mgr.Issue(ctx, uuid.New())
		assert.ErrorIs(t, err, session.ErrStoreUnavailable)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)

		_, ok := mgr.Validate(ctx, "sessionID=abc")
		assert.False(t, ok)
	})

	t.Run("entropy failure", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore()
		mgr := session.New(store, users{}, codec, session.WithRandom(failingReader{}))
		defer mgr.Close()

		header, err := mgr.Issue(ctx, uuid.New())
		assert.ErrorIs(t, err, session.ErrCryptoBackend)
		assert.Empty(t, header)
		assert.Zero(t, store.Len())
	})
}

// countingCleaner records sweeps.
type countingCleaner struct {
	*session.MemoryStore
	sweeps atomic.Int32
}

func (c *countingCleaner) DeleteExpired(ctx context.Context) (int64, error) {
	c.sweeps.Add(1)
	return c.MemoryStore.DeleteExpired(ctx)
}

func TestManager_CleanupLoop(t *testing.T) {
	t.Parallel()

	codec, err := cookie.New("sessionID")
	require.NoError(t, err)
	store := &countingCleaner{MemoryStore: session.NewMemoryStore()}

	mgr := session.New(store, users{}, codec,
		session.WithConfig(session.Config{CleanupInterval: 10 * time.Millisecond}),
	)

	assert.Eventually(t, func() bool { return store.sweeps.Load() >= 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, mgr.Close())
	require.NoError(t, mgr.Close())

	after := store.sweeps.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, store.sweeps.Load())
}
