package redis

import "errors"

// Connection errors. Connect and Healthcheck wrap the driver error with one
// of these so callers can match on errors.Is.
var (
	ErrEmptyConnectionURL           = errors.New("redis.empty_connection_url")
	ErrFailedToParseRedisConnString = errors.New("redis.invalid_connection_url")
	ErrRedisNotReady                = errors.New("redis.not_ready")
	ErrHealthcheckFailed            = errors.New("redis.healthcheck_failed")
)
