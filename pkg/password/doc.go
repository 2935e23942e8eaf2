// Package password salts, hashes and verifies user passwords with PBKDF2.
//
// A credential record is stored as a single opaque hex string: the derived key
// followed by the salt, with no separator. Decoding relies on the configured
// salt length, which therefore must stay constant for the lifetime of the
// stored records.
//
// # Usage
//
//	h, err := password.New(password.DefaultConfig())
//	if err != nil { ... }
//
//	encoded, err := h.HashContext(ctx, "CorrectHorse1")
//	ok, err := h.VerifyContext(ctx, encoded, "CorrectHorse1")
//
// Hash and Verify are synchronous and CPU-bound. The Context variants run them
// on a bounded async.Pool and stop waiting when the request context is done.
//
// # Error Handling
//
//   - ErrCryptoBackend   – the random source failed; fatal for the request
//   - ErrMalformedRecord – Decode could not split or hex-decode a record
//
// A wrong password is not an error: Verify simply returns false.
package password
