// Package session implements cookie based login sessions.
//
// A session is a random hex token (GenerateToken) stored server side with the
// owning user id and an absolute expiry. The Manager ties a Store, a
// UserResolver and a cookie.Codec together:
//
//   - Issue creates a session and returns the Set-Cookie header value.
//   - Validate turns a Cookie request header into a username. Missing,
//     unknown, expired or unresolvable sessions all yield anonymous; it never
//     returns an error.
//   - Destroy deletes the session and returns a header that expires the
//     cookie. A failing delete is reported as ErrStoreUnavailable so logout is
//     never claimed to succeed when it did not.
//
// Expiry is lazy: stores exclude expired records when resolving. When
// Config.CleanupInterval is set and the store implements ExpiredCleaner, the
// Manager also sweeps expired rows in the background until Close.
//
// Every store call is bounded by Config.StoreTimeout; timeouts and backend
// errors surface as ErrStoreUnavailable. Token entropy failures surface as
// ErrCryptoBackend.
//
// Middleware, RequireAuth, IssueCookie and DestroyCookie adapt the Manager to
// net/http; handlers read the caller with UsernameFromContext.
//
//	mgr := session.New(store, accounts, codec, session.WithConfig(cfg), session.WithLogger(log))
//	defer mgr.Close()
//
//	r.Use(mgr.Middleware)
//	r.With(mgr.RequireAuth).Get("/me", me)
package session
