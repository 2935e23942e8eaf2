package password

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"
)

// Digest identifies the HMAC hash used by PBKDF2.
type Digest string

const (
	SHA256 Digest = "sha256"
	SHA384 Digest = "sha384"
	SHA512 Digest = "sha512"
)

// UnmarshalText accepts digest names case-insensitively, with or without a dash ("SHA-512").
func (d *Digest) UnmarshalText(text []byte) error {
	v := Digest(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(string(text))), "-", ""))
	if _, err := v.hashFunc(); err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Digest) hashFunc() (func() hash.Hash, error) {
	switch d {
	case SHA256:
		return sha256.New, nil
	case SHA384:
		return sha512.New384, nil
	case SHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDigest, string(d))
	}
}
