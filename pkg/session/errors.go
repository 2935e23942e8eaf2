package session

import "errors"

var (
	// ErrSessionNotFound is returned by stores for absent and expired sessions alike.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrStoreUnavailable indicates the store failed or timed out. Safe to retry.
	ErrStoreUnavailable = errors.New("session.store_unavailable")

	// ErrCryptoBackend indicates the secure random source failed.
	ErrCryptoBackend = errors.New("session.crypto_backend_failure")

	ErrInvalidConfig = errors.New("session.invalid_config")
)
