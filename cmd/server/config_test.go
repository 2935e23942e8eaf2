package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/config"
	"github.com/dmitrymomot/authkit/pkg/environment"
)

func TestAppConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		require.NoError(t, config.Parse(&cfg, map[string]string{}))
		assert.Equal(t, environment.Development, cfg.Env)
		assert.Equal(t, "authkit", cfg.Name)
		assert.Equal(t, driverMemory, cfg.UserStore)
		assert.Equal(t, driverMemory, cfg.SessionStore)
		assert.NoError(t, cfg.validate())
		assert.False(t, cfg.needsPostgres())
	})

	t.Run("drivers", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		require.NoError(t, config.Parse(&cfg, map[string]string{
			"APP_ENV":       "prod",
			"USER_STORE":    "postgres",
			"SESSION_STORE": "redis",
		}))
		assert.Equal(t, environment.Production, cfg.Env)
		assert.NoError(t, cfg.validate())
		assert.True(t, cfg.needsPostgres())
	})

	t.Run("unknown drivers", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, appConfig{UserStore: "redis", SessionStore: driverMemory}.validate())
		assert.Error(t, appConfig{UserStore: driverMemory, SessionStore: "mongo"}.validate())
	})

	t.Run("postgres sessions need postgres users", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, appConfig{UserStore: driverMemory, SessionStore: driverPostgres}.validate())
		assert.NoError(t, appConfig{UserStore: driverPostgres, SessionStore: driverPostgres}.validate())
		assert.NoError(t, appConfig{UserStore: driverMemory, SessionStore: driverRedis}.validate())
	})
}
