package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
)

// GenerateToken reads size bytes from r and returns them hex encoded.
// A nil r means crypto/rand.Reader. There is no fallback source: any read
// failure is reported as ErrCryptoBackend.
func GenerateToken(r io.Reader, size int) (string, error) {
	if size <= 0 {
		return "", ErrInvalidConfig
	}
	if r == nil {
		r = rand.Reader
	}
	b := make([]byte, size)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", errors.Join(ErrCryptoBackend, err)
	}
	return hex.EncodeToString(b), nil
}
