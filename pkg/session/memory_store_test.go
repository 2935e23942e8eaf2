package session_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/session"
)

// clock is a manually advanced time source shared by store and manager.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("create and resolve", func(t *testing.T) {
		t.Parallel()
		clk := newClock()
		store := session.NewMemoryStore(session.WithStoreClock(clk.Now))
		userID := uuid.New()

		require.NoError(t, store.Create(ctx, "tok", userID, clk.Now().Add(time.Hour)))
		got, err := store.Resolve(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore()
		_, err := store.Resolve(ctx, "missing")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("expired is indistinguishable from missing", func(t *testing.T) {
		t.Parallel()
		clk := newClock()
		store := session.NewMemoryStore(session.WithStoreClock(clk.Now))
		require.NoError(t, store.Create(ctx, "tok", uuid.New(), clk.Now().Add(time.Minute)))

		clk.Advance(time.Minute)
		_, err := store.Resolve(ctx, "tok")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore()
		require.NoError(t, store.Create(ctx, "tok", uuid.New(), time.Now().Add(time.Hour)))

		require.NoError(t, store.Delete(ctx, "tok"))
		require.NoError(t, store.Delete(ctx, "tok"))
		require.NoError(t, store.Delete(ctx, "never-existed"))

		_, err := store.Resolve(ctx, "tok")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("delete expired", func(t *testing.T) {
		t.Parallel()
		clk := newClock()
		store := session.NewMemoryStore(session.WithStoreClock(clk.Now))
		require.NoError(t, store.Create(ctx, "short", uuid.New(), clk.Now().Add(time.Minute)))
		require.NoError(t, store.Create(ctx, "long", uuid.New(), clk.Now().Add(time.Hour)))

		clk.Advance(2 * time.Minute)
		n, err := store.DeleteExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore()
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, store.Create(canceled, "tok", uuid.New(), time.Now().Add(time.Hour)), context.Canceled)
	})

	t.Run("concurrent access", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore()
		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				token := fmt.Sprintf("tok-%d", i)
				assert.NoError(t, store.Create(ctx, token, uuid.New(), time.Now().Add(time.Hour)))
				_, err := store.Resolve(ctx, token)
				assert.NoError(t, err)
				assert.NoError(t, store.Delete(ctx, token))
			}()
		}
		wg.Wait()
		assert.Zero(t, store.Len())
	})
}
