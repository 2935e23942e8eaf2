package session

import (
	"io"
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithConfig sets custom configuration. Zero fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.cfg = cfg.withDefaults()
	}
}

// WithClock replaces time.Now when computing expiry.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithRandom sets the token entropy source. Defaults to crypto/rand.
func WithRandom(r io.Reader) Option {
	return func(m *Manager) {
		if r != nil {
			m.rand = r
		}
	}
}

// WithLogger sets the logger for store failures and cleanup runs.
// Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}
