// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware keeps a client supplied X-Request-ID when it is at most 128
// characters of [a-zA-Z0-9_-], otherwise it generates a UUIDv7. The id is
// stored in the request context, echoed in the response header and exposed to
// slog through LoggerExtractor:
//
//	import "github.com/dmitrymomot/authkit/pkg/requestid"
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
