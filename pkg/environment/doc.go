// Package environment propagates the application environment (development,
// staging, production) through configuration, request contexts and logs.
//
// Parse normalizes APP_ENV values, accepting the short aliases "dev", "stage"
// and "prod". Environment implements encoding.TextUnmarshaler so it can be a
// field of an env-tagged config struct.
//
// Middleware attaches the environment to every request context. FromContext,
// IsDevelopment and IsProduction read it back, and LoggerExtractor exposes it
// as a slog attribute for logger.WithContextExtractors.
//
//	import "github.com/dmitrymomot/authkit/pkg/environment"
//
//	r := chi.NewRouter()
//	r.Use(environment.Middleware(cfg.Env))
package environment
