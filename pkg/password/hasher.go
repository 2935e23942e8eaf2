package password

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"log/slog"

	"golang.org/x/crypto/pbkdf2"

	"github.com/dmitrymomot/authkit/pkg/async"
	"github.com/dmitrymomot/authkit/pkg/logger"
)

// Record is a decoded credential record.
type Record struct {
	Key        []byte
	Salt       []byte
	Iterations int
	Digest     Digest
}

// Hasher derives, encodes and verifies salted PBKDF2 password hashes.
// It holds no mutable state and is safe for concurrent use.
type Hasher struct {
	cfg    Config
	prf    func() hash.Hash
	rand   io.Reader
	logger *slog.Logger
	pool   *async.Pool
}

// New creates a Hasher from cfg.
func New(cfg Config, opts ...Option) (*Hasher, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	prf, _ := cfg.Digest.hashFunc()

	h := &Hasher{
		cfg:    cfg,
		prf:    prf,
		rand:   rand.Reader,
		logger: logger.Discard(),
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.pool == nil {
		h.pool = async.NewPool(cfg.Workers)
	}

	return h, nil
}

// EncodedLen returns the length of every encoded record produced by Hash.
func (h *Hasher) EncodedLen() int {
	return 2 * (h.cfg.KeyBytes + h.cfg.SaltBytes)
}

// Hash salts and hashes plaintext, returning hex(key) followed by hex(salt).
// A new salt is drawn on every call.
func (h *Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, h.cfg.SaltBytes)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", errors.Join(ErrCryptoBackend, err)
	}

	key := h.derive(plaintext, salt)
	return hex.EncodeToString(key) + hex.EncodeToString(salt), nil
}

// Decode splits an encoded record into key and salt.
// The salt is the trailing 2*SaltBytes hex characters.
func (h *Hasher) Decode(encoded string) (Record, error) {
	saltHexLen := 2 * h.cfg.SaltBytes
	if len(encoded) < saltHexLen {
		return Record{}, ErrMalformedRecord
	}

	split := len(encoded) - saltHexLen
	key, err := hex.DecodeString(encoded[:split])
	if err != nil {
		return Record{}, errors.Join(ErrMalformedRecord, err)
	}
	salt, err := hex.DecodeString(encoded[split:])
	if err != nil {
		return Record{}, errors.Join(ErrMalformedRecord, err)
	}

	return Record{
		Key:        key,
		Salt:       salt,
		Iterations: h.cfg.Iterations,
		Digest:     h.cfg.Digest,
	}, nil
}

// Verify reports whether candidate matches the encoded record.
// Malformed records are logged and reported as a mismatch.
func (h *Hasher) Verify(encoded, candidate string) bool {
	rec, err := h.Decode(encoded)
	if err != nil {
		h.logger.Warn("credential record is malformed",
			logger.Component("password"),
			logger.Error(err),
		)
		return false
	}

	derived := h.derive(candidate, rec.Salt)
	return subtle.ConstantTimeCompare(derived, rec.Key) == 1
}

// HashContext runs Hash on the worker pool.
// If ctx ends before the result is ready, ctx.Err() is returned and the result is dropped.
func (h *Hasher) HashContext(ctx context.Context, plaintext string) (string, error) {
	return async.Submit(ctx, h.pool, func(context.Context) (string, error) {
		return h.Hash(plaintext)
	}).AwaitContext(ctx)
}

// VerifyContext runs Verify on the worker pool.
// The only possible error is ctx.Err().
func (h *Hasher) VerifyContext(ctx context.Context, encoded, candidate string) (bool, error) {
	return async.Submit(ctx, h.pool, func(context.Context) (bool, error) {
		return h.Verify(encoded, candidate), nil
	}).AwaitContext(ctx)
}

func (h *Hasher) derive(plaintext string, salt []byte) []byte {
	return pbkdf2.Key([]byte(plaintext), salt, h.cfg.Iterations, h.cfg.KeyBytes, h.prf)
}
