package main

import (
	"fmt"

	"github.com/dmitrymomot/authkit/pkg/environment"
)

// Store drivers selectable through USER_STORE and SESSION_STORE.
const (
	driverMemory   = "memory"
	driverPostgres = "postgres"
	driverRedis    = "redis"
)

type appConfig struct {
	Env          environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name         string                  `env:"APP_NAME" envDefault:"authkit"`
	UserStore    string                  `env:"USER_STORE" envDefault:"memory"`
	SessionStore string                  `env:"SESSION_STORE" envDefault:"memory"`
}

func (c appConfig) validate() error {
	switch c.UserStore {
	case driverMemory, driverPostgres:
	default:
		return fmt.Errorf("unsupported USER_STORE %q (memory|postgres)", c.UserStore)
	}
	switch c.SessionStore {
	case driverMemory, driverPostgres, driverRedis:
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q (memory|postgres|redis)", c.SessionStore)
	}
	// sessions.user_id references users.id, so postgres sessions need postgres users.
	if c.SessionStore == driverPostgres && c.UserStore != driverPostgres {
		return fmt.Errorf("SESSION_STORE=postgres requires USER_STORE=postgres, got %q", c.UserStore)
	}
	return nil
}

func (c appConfig) needsPostgres() bool {
	return c.UserStore == driverPostgres || c.SessionStore == driverPostgres
}
