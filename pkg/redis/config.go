package redis

import "time"

// Config holds connection settings. KeyPrefix is prepended to the prefixes
// of every store sharing the client, so several deployments can use one
// Redis database.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"authkit:"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// Key returns name namespaced by the configured prefix.
func (c Config) Key(name string) string {
	return c.KeyPrefix + name
}
