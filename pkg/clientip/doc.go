// Package clientip resolves the originating client address of a request.
//
// Forwarding headers are attacker-controlled unless a proxy in front of the
// server overwrites them, so a Resolver reads only the headers it is told to
// trust and otherwise falls back to the TCP peer address:
//
//	res := clientip.New("CF-Connecting-IP", "X-Forwarded-For")
//	r.Use(res.Middleware)
//
//	ip := clientip.FromContext(r.Context())
//
// The resolved address keys per-client login throttling and is attached to
// log records through LoggerExtractor.
package clientip
