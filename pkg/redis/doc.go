// Package redis connects to Redis with go-redis/v9.
//
// Connect reads REDIS_URL style configuration, retries the initial ping and
// returns a ready *redis.Client. Healthcheck adapts any redis.UniversalClient
// to a readiness probe. The session store built on top lives in redisstore.
package redis
