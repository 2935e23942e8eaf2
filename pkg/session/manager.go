package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/cookie"
	"github.com/dmitrymomot/authkit/pkg/logger"
)

// UserResolver maps a session owner to a display username.
type UserResolver interface {
	UsernameByID(ctx context.Context, id uuid.UUID) (string, error)
}

// Manager issues, validates and destroys cookie sessions.
type Manager struct {
	store  Store
	users  UserResolver
	codec  *cookie.Codec
	cfg    Config
	now    func() time.Time
	rand   io.Reader
	logger *slog.Logger

	stop      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates a session manager. It panics when a collaborator is nil or the
// configuration is invalid, since either is a wiring bug.
func New(store Store, users UserResolver, codec *cookie.Codec, opts ...Option) *Manager {
	if store == nil {
		panic("session: store is required")
	}
	if users == nil {
		panic("session: user resolver is required")
	}
	if codec == nil {
		panic("session: cookie codec is required")
	}

	m := &Manager{
		store:  store,
		users:  users,
		codec:  codec,
		cfg:    DefaultConfig(),
		now:    time.Now,
		logger: logger.Discard(),
		stop:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	if !m.cfg.valid() {
		panic("session: invalid config")
	}
	m.logger = m.logger.With(logger.Component("session"))

	if m.cfg.CleanupInterval > 0 {
		if cleaner, ok := store.(ExpiredCleaner); ok {
			m.wg.Add(1)
			go m.cleanupLoop(cleaner)
		}
	}

	return m
}

// NewFromConfig creates a new Manager from the provided Config.
func NewFromConfig(cfg Config, store Store, users UserResolver, codec *cookie.Codec, opts ...Option) *Manager {
	return New(store, users, codec, append([]Option{WithConfig(cfg)}, opts...)...)
}

// Issue starts a session for userID and returns the Set-Cookie value.
// No header is returned on failure, so the login must not be reported
// as successful.
func (m *Manager) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := GenerateToken(m.rand, m.cfg.TokenBytes)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to generate session token", logger.Error(err))
		return "", err
	}
	expiresAt := m.now().Add(m.cfg.Lifetime)

	storeCtx, cancel := context.WithTimeout(ctx, m.cfg.StoreTimeout)
	defer cancel()

	if err := m.store.Create(storeCtx, token, userID, expiresAt); err != nil {
		return "", m.unavailable(ctx, "create", err)
	}

	m.logger.DebugContext(ctx, "session issued",
		logger.UserID(userID),
		logger.ExpiresAt(expiresAt),
	)
	return m.codec.Encode(token, expiresAt), nil
}

// Validate resolves a Cookie request header to a username. Every failure,
// including store errors, downgrades the request to anonymous ("", false).
func (m *Manager) Validate(ctx context.Context, cookieHeader string) (string, bool) {
	token, _ := m.codec.Decode(cookieHeader)
	id, ok := m.identify(ctx, token)
	return id.Username, ok
}

// Destroy deletes the session named in cookieHeader. The returned header
// expires the cookie and is always set, even alongside ErrStoreUnavailable.
func (m *Manager) Destroy(ctx context.Context, cookieHeader string) (string, error) {
	token, _ := m.codec.Decode(cookieHeader)
	return m.codec.Expire(), m.revoke(ctx, token)
}

// revoke deletes token from the store. An empty token is a no-op.
func (m *Manager) revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	storeCtx, cancel := context.WithTimeout(ctx, m.cfg.StoreTimeout)
	defer cancel()

	if err := m.store.Delete(storeCtx, token); err != nil {
		return m.unavailable(ctx, "delete", err)
	}
	return nil
}

// Close stops the cleanup loop. It is safe to call more than once.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() {
		close(m.stop)
	})
	m.wg.Wait()
	return nil
}

// identify resolves a session token to its owner. An empty token is anonymous.
func (m *Manager) identify(ctx context.Context, token string) (Identity, bool) {
	if token == "" {
		return Identity{}, false
	}

	storeCtx, cancel := context.WithTimeout(ctx, m.cfg.StoreTimeout)
	defer cancel()

	userID, err := m.store.Resolve(storeCtx, token)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return Identity{}, false
	case err != nil:
		m.logger.WarnContext(ctx, "session lookup failed, treating request as anonymous",
			logger.Error(err),
		)
		return Identity{}, false
	}

	username, err := m.users.UsernameByID(storeCtx, userID)
	if err != nil {
		m.logger.WarnContext(ctx, "session owner lookup failed, treating request as anonymous",
			logger.UserID(userID),
			logger.Error(err),
		)
		return Identity{}, false
	}
	return Identity{UserID: userID, Username: username}, true
}

func (m *Manager) unavailable(ctx context.Context, op string, err error) error {
	m.logger.ErrorContext(ctx, "session store call failed",
		logger.Event(op),
		logger.Error(err),
	)
	if errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	return errors.Join(ErrStoreUnavailable, err)
}

func (m *Manager) cleanupLoop(cleaner ExpiredCleaner) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), m.cfg.StoreTimeout)
			n, err := cleaner.DeleteExpired(ctx)
			cancel()
			if err != nil {
				m.logger.Warn("expired session sweep failed", logger.Error(err))
				continue
			}
			if n > 0 {
				m.logger.Debug("expired sessions removed", slog.Int64("count", n))
			}
		}
	}
}
