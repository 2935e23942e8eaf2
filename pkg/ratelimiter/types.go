package ratelimiter

import "time"

// Result contains the result of a rate limit check.
type Result struct {
	Limit     int       // Maximum tokens (bucket capacity)
	Remaining int       // Tokens remaining; negative when the request was denied
	ResetAt   time.Time // Time of the next refill
}

// Allowed returns whether the request is allowed based on remaining tokens.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before the next attempt, rounded up
// to a whole second. It is 0 for allowed requests and at least one second
// otherwise.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() {
		return 0
	}
	secs := (r.ResetAt.Sub(now) + time.Second - 1) / time.Second
	return max(time.Second, secs*time.Second)
}

// Config defines the token bucket configuration.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"10"`         // burst size
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`       // tokens added per interval
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"30s"` // how often tokens are added
}

// DefaultConfig allows a burst of 10 attempts and one more every 30 seconds.
func DefaultConfig() Config {
	return Config{
		Capacity:       10,
		RefillRate:     1,
		RefillInterval: 30 * time.Second,
	}
}

// idleTTL is how long a bucket must stay untouched before it is full again
// and can be forgotten.
func (c Config) idleTTL() time.Duration {
	return time.Duration(c.Capacity/c.RefillRate+1) * c.RefillInterval
}
