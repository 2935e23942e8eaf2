// Package ratelimiter throttles requests with a token bucket.
//
// Each key owns a bucket holding up to Capacity tokens; every request takes
// one and RefillRate tokens come back every RefillInterval. The account
// module keys buckets by endpoint and client IP to slow down password
// guessing against /login and /register.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	throttle := ratelimiter.Middleware(limiter, ratelimiter.Composite(
//		ratelimiter.ByPath,
//		func(r *http.Request) string { return clientip.FromContext(r.Context()) },
//	))
//
// MemoryStore keeps buckets in process; RedisStore shares them between
// replicas with a Lua script so refill and consume happen atomically.
package ratelimiter
