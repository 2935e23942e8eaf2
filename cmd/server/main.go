package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/authkit/modules/account"
	accountsvc "github.com/dmitrymomot/authkit/pkg/account"
	"github.com/dmitrymomot/authkit/pkg/binder"
	"github.com/dmitrymomot/authkit/pkg/clientip"
	"github.com/dmitrymomot/authkit/pkg/config"
	"github.com/dmitrymomot/authkit/pkg/cookie"
	"github.com/dmitrymomot/authkit/pkg/environment"
	"github.com/dmitrymomot/authkit/pkg/httpserver"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/password"
	"github.com/dmitrymomot/authkit/pkg/ratelimiter"
	"github.com/dmitrymomot/authkit/pkg/requestid"
	"github.com/dmitrymomot/authkit/pkg/session"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	var (
		appCfg    appConfig
		logCfg    logger.Config
		httpCfg   httpserver.Config
		bindCfg   binder.Config
		hashCfg   password.Config
		cookieCfg cookie.Config
		sessCfg   session.Config
		ipCfg     clientip.Config
		rateCfg   ratelimiter.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&logCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&bindCfg) },
		func() error { return config.Load(&hashCfg) },
		func() error { return config.Load(&cookieCfg) },
		func() error { return config.Load(&sessCfg) },
		func() error { return config.Load(&ipCfg) },
		func() error { return config.Load(&rateCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}
	if err := appCfg.validate(); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(string(appCfg.Env), appCfg.Name),
		logger.WithConfig(logCfg),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			environment.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	st, err := openStores(ctx, appCfg, log)
	if err != nil {
		return err
	}

	hasher, err := password.New(hashCfg, password.WithLogger(log))
	if err != nil {
		st.close(ctx, log)
		return err
	}
	accounts := accountsvc.NewService(st.users, hasher, accountsvc.WithLogger(log))

	codec, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		st.close(ctx, log)
		return err
	}
	sessions := session.NewFromConfig(sessCfg, st.sessions, accounts, codec, session.WithLogger(log))

	limiter, err := ratelimiter.NewBucket(st.limits, rateCfg)
	if err != nil {
		st.close(ctx, log)
		return err
	}
	throttle := ratelimiter.Middleware(limiter,
		ratelimiter.Composite(ratelimiter.ByPath, func(r *http.Request) string {
			return clientip.FromContext(r.Context())
		}),
		ratelimiter.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(clientip.NewFromConfig(ipCfg).Middleware)
	r.Use(environment.Middleware(appCfg.Env))
	r.Mount("/", account.Router(account.RouterOptions{
		Accounts:        accounts,
		Sessions:        sessions,
		MaxBodyBytes:    bindCfg.MaxBodyBytes,
		ReadinessChecks: st.checks,
		Throttle:        throttle,
		Logger:          log,
	}))

	opts := append([]httpserver.Option{httpserver.WithLogger(log)}, st.closers...)
	opts = append(opts, httpserver.WithCloser("sessions", func(context.Context) error {
		return sessions.Close()
	}))
	srv := httpserver.NewFromConfig(httpCfg, opts...)

	if err := srv.Run(ctx, r); err != nil {
		// Closers have not run when the listener never came up.
		_ = srv.Shutdown(context.WithoutCancel(ctx))
		return err
	}
	return nil
}
