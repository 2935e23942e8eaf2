package session

import "time"

// Config holds session configuration
type Config struct {
	// TokenBytes is the number of random bytes per token; the cookie carries twice as many hex chars.
	TokenBytes int `env:"SESSION_TOKEN_BYTES" envDefault:"32"`

	Lifetime time.Duration `env:"SESSION_LIFETIME" envDefault:"24h"`

	// StoreTimeout bounds every store call made by the Manager.
	StoreTimeout time.Duration `env:"SESSION_STORE_TIMEOUT" envDefault:"5s"`

	// CleanupInterval for expired sessions (0 to disable)
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"0s"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		TokenBytes:   32,
		Lifetime:     24 * time.Hour,
		StoreTimeout: 5 * time.Second,
	}
}

// withDefaults fills zero values from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.TokenBytes == 0 {
		c.TokenBytes = d.TokenBytes
	}
	if c.Lifetime == 0 {
		c.Lifetime = d.Lifetime
	}
	if c.StoreTimeout == 0 {
		c.StoreTimeout = d.StoreTimeout
	}
	return c
}

func (c Config) valid() bool {
	return c.TokenBytes > 0 && c.Lifetime > 0 && c.StoreTimeout > 0 && c.CleanupInterval >= 0
}
