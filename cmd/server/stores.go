package main

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/authkit/pkg/account"
	"github.com/dmitrymomot/authkit/pkg/config"
	"github.com/dmitrymomot/authkit/pkg/httpserver"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/pg"
	"github.com/dmitrymomot/authkit/pkg/pgstore"
	"github.com/dmitrymomot/authkit/pkg/ratelimiter"
	"github.com/dmitrymomot/authkit/pkg/redis"
	"github.com/dmitrymomot/authkit/pkg/redisstore"
	"github.com/dmitrymomot/authkit/pkg/session"
)

// stores holds the persistence picked by configuration together with the
// readiness checks and shutdown hooks of the connections behind it.
type stores struct {
	users    account.Store
	sessions session.Store
	limits   ratelimiter.Store
	checks   []httpserver.Check
	closers  []httpserver.Option
}

func openStores(ctx context.Context, cfg appConfig, log *slog.Logger) (*stores, error) {
	s := &stores{
		users:    account.NewMemoryStore(),
		sessions: session.NewMemoryStore(),
	}

	var pool *pgxpool.Pool
	if cfg.needsPostgres() {
		var pgCfg pg.Config
		if err := config.Load(&pgCfg); err != nil {
			return nil, err
		}
		var err error
		pool, err = pg.Connect(ctx, pgCfg)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, httpserver.WithCloser("postgres", func(context.Context) error {
			pool.Close()
			return nil
		}))
		s.checks = append(s.checks, httpserver.Check{Name: "postgres", Fn: pg.Healthcheck(pool)})

		if err := pg.Migrate(ctx, pool, pgstore.Migrations, pgCfg, log); err != nil {
			s.close(ctx, log)
			return nil, err
		}
	}

	if cfg.UserStore == driverPostgres {
		s.users = pgstore.NewUserStore(pool)
	}

	switch cfg.SessionStore {
	case driverPostgres:
		s.sessions = pgstore.NewSessionStore(pool)
	case driverRedis:
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			s.close(ctx, log)
			return nil, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			s.close(ctx, log)
			return nil, err
		}
		s.sessions = redisstore.NewSessionStore(client,
			redisstore.WithPrefix(redisCfg.Key(redisstore.DefaultPrefix)))
		s.limits = ratelimiter.NewRedisStore(client,
			ratelimiter.WithRedisPrefix(redisCfg.Key(ratelimiter.DefaultRedisPrefix)))
		s.closers = append(s.closers, httpserver.WithCloser("redis", func(context.Context) error {
			return client.Close()
		}))
		s.checks = append(s.checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
	}

	if s.limits == nil {
		mem := ratelimiter.NewMemoryStore()
		s.limits = mem
		s.closers = append(s.closers, httpserver.WithCloser("ratelimiter", func(context.Context) error {
			return mem.Close()
		}))
	}

	log.InfoContext(ctx, "stores ready",
		slog.String("user_store", cfg.UserStore),
		slog.String("session_store", cfg.SessionStore),
		logger.Component("server"),
	)
	return s, nil
}

// close releases connections when startup fails before the server owns them.
func (s *stores) close(ctx context.Context, log *slog.Logger) {
	srv := httpserver.New(s.closers...)
	if err := srv.Shutdown(ctx); err != nil {
		log.ErrorContext(ctx, "failed to release stores", logger.Error(err))
	}
}
