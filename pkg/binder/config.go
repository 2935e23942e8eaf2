package binder

import "net/http"

// Config holds binder settings read from the environment.
type Config struct {
	MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" envDefault:"1048576"`
}

// NewFromConfig returns a form binder capped at cfg.MaxBodyBytes.
func NewFromConfig(cfg Config) func(r *http.Request, v any) error {
	return Form(cfg.MaxBodyBytes)
}
