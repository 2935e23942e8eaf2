package password

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/authkit/pkg/async"
)

// Option configures a Hasher.
type Option func(*Hasher)

// WithRandom sets the source used for salts. Defaults to crypto/rand.Reader.
func WithRandom(r io.Reader) Option {
	return func(h *Hasher) {
		if r != nil {
			h.rand = r
		}
	}
}

// WithLogger sets the logger used to report malformed records.
func WithLogger(l *slog.Logger) Option {
	return func(h *Hasher) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithPool runs HashContext/VerifyContext on a shared worker pool instead of a private one.
func WithPool(p *async.Pool) Option {
	return func(h *Hasher) {
		if p != nil {
			h.pool = p
		}
	}
}
