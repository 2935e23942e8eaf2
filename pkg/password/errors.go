package password

import "errors"

var (
	// ErrCryptoBackend indicates the secure random source failed. Not retryable.
	ErrCryptoBackend = errors.New("password.crypto_backend_failure")

	// ErrMalformedRecord indicates a stored credential record cannot be decoded
	ErrMalformedRecord = errors.New("password.malformed_record")

	// ErrUnsupportedDigest indicates an unknown digest algorithm identifier
	ErrUnsupportedDigest = errors.New("password.unsupported_digest")

	// ErrInvalidConfig indicates non-positive lengths or iteration count
	ErrInvalidConfig = errors.New("password.invalid_config")
)
