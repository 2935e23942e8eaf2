// Package httpserver runs an http.Handler with sane timeouts, graceful
// shutdown and ordered release of long-lived resources.
//
// Run blocks until the context is canceled or SIGINT/SIGTERM is received.
// Shutdown drains in-flight requests and then calls every closer registered
// with WithCloser in reverse order, so a session cleanup loop stops before the
// database pool it uses is closed. Errors are wrapped with ErrStart or
// ErrShutdown for errors.Is checks.
//
// HealthCheckHandler serves liveness and readiness probes:
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithCloser("postgres", func(context.Context) error { pool.Close(); return nil }),
//	)
//	r.Get("/healthz", httpserver.HealthCheckHandler(log, time.Second))
//	r.Get("/readyz", httpserver.HealthCheckHandler(log, time.Second,
//		httpserver.Check{Name: "postgres", Fn: pg.Healthcheck(pool)},
//	))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
