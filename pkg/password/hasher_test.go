package password_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/password"
)

// fastConfig keeps iteration counts low so tests stay quick.
func fastConfig() password.Config {
	return password.Config{
		SaltBytes:  16,
		KeyBytes:   32,
		Iterations: 1000,
		Digest:     password.SHA256,
		Workers:    2,
	}
}

func newHasher(t *testing.T, opts ...password.Option) *password.Hasher {
	t.Helper()
	h, err := password.New(fastConfig(), opts...)
	require.NoError(t, err)
	return h
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown digest", func(t *testing.T) {
		t.Parallel()
		cfg := fastConfig()
		cfg.Digest = "md5"
		_, err := password.New(cfg)
		assert.ErrorIs(t, err, password.ErrUnsupportedDigest)
	})

	t.Run("rejects non-positive values", func(t *testing.T) {
		t.Parallel()
		for _, mutate := range []func(*password.Config){
			func(c *password.Config) { c.SaltBytes = 0 },
			func(c *password.Config) { c.KeyBytes = -1 },
			func(c *password.Config) { c.Iterations = 0 },
		} {
			cfg := fastConfig()
			mutate(&cfg)
			_, err := password.New(cfg)
			assert.ErrorIs(t, err, password.ErrInvalidConfig)
		}
	})
}

func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		for _, p := range []string{"CorrectHorse1", "", "pässwörd-ünicode", strings.Repeat("x", 512)} {
			encoded, err := h.Hash(p)
			require.NoError(t, err)
			assert.Len(t, encoded, h.EncodedLen())
			assert.True(t, h.Verify(encoded, p), "password %q should verify", p)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		encoded, err := h.Hash("CorrectHorse1")
		require.NoError(t, err)
		assert.False(t, h.Verify(encoded, "CorrectHorse2"))
		assert.False(t, h.Verify(encoded, ""))
	})

	t.Run("fresh salt per call", func(t *testing.T) {
		t.Parallel()
		a, err := h.Hash("same")
		require.NoError(t, err)
		b, err := h.Hash("same")
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
		assert.True(t, h.Verify(a, "same"))
		assert.True(t, h.Verify(b, "same"))
	})

	t.Run("decode is left inverse", func(t *testing.T) {
		t.Parallel()
		encoded, err := h.Hash("CorrectHorse1")
		require.NoError(t, err)

		rec, err := h.Decode(encoded)
		require.NoError(t, err)
		assert.Len(t, rec.Salt, 16)
		assert.Len(t, rec.Key, 32)
		assert.Equal(t, 1000, rec.Iterations)
		assert.Equal(t, password.SHA256, rec.Digest)
	})
}

func TestHasher_Decode(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	t.Run("too short", func(t *testing.T) {
		t.Parallel()
		_, err := h.Decode(strings.Repeat("a", 31))
		assert.ErrorIs(t, err, password.ErrMalformedRecord)
	})

	t.Run("exactly salt length yields empty key", func(t *testing.T) {
		t.Parallel()
		rec, err := h.Decode(strings.Repeat("ab", 16))
		require.NoError(t, err)
		assert.Empty(t, rec.Key)
		assert.Len(t, rec.Salt, 16)
	})

	t.Run("not hex", func(t *testing.T) {
		t.Parallel()
		_, err := h.Decode(strings.Repeat("zz", 48))
		assert.ErrorIs(t, err, password.ErrMalformedRecord)
	})
}

func TestHasher_VerifyMalformed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := newHasher(t, password.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	assert.False(t, h.Verify("deadbeef", "anything"))
	assert.False(t, h.Verify(strings.Repeat("q", 200), "anything"))
	assert.Contains(t, buf.String(), "credential record is malformed")
	assert.Contains(t, buf.String(), "component=password")

	// default logger discards
	assert.False(t, newHasher(t).Verify("deadbeef", "anything"))
}

func TestHasher_CryptoBackendFailure(t *testing.T) {
	t.Parallel()
	h := newHasher(t, password.WithRandom(failingReader{}))

	encoded, err := h.Hash("CorrectHorse1")
	assert.ErrorIs(t, err, password.ErrCryptoBackend)
	assert.Empty(t, encoded)

	_, err = h.HashContext(context.Background(), "CorrectHorse1")
	assert.ErrorIs(t, err, password.ErrCryptoBackend)
}

func TestHasher_Context(t *testing.T) {
	t.Parallel()
	h := newHasher(t)
	ctx := context.Background()

	encoded, err := h.HashContext(ctx, "CorrectHorse1")
	require.NoError(t, err)

	ok, err := h.VerifyContext(ctx, encoded, "CorrectHorse1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.VerifyContext(ctx, encoded, "wrongpass1")
	require.NoError(t, err)
	assert.False(t, ok)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = h.VerifyContext(canceled, encoded, "CorrectHorse1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHasher_DefaultScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("150000 iterations of SHA-512")
	}
	t.Parallel()

	h, err := password.New(password.Config{
		SaltBytes:  32,
		KeyBytes:   64,
		Iterations: 150000,
		Digest:     password.SHA512,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	encoded, err := h.HashContext(ctx, "CorrectHorse1")
	require.NoError(t, err)
	assert.Len(t, encoded, 192)

	rec, err := h.Decode(encoded)
	require.NoError(t, err)
	assert.Len(t, rec.Key, 64)
	assert.Len(t, rec.Salt, 32)

	ok, err := h.VerifyContext(ctx, encoded, "CorrectHorse1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.VerifyContext(ctx, encoded, "wrongpass1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDigest_UnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want password.Digest
		err  bool
	}{
		{"sha512", password.SHA512, false},
		{"SHA-512", password.SHA512, false},
		{" sha256 ", password.SHA256, false},
		{"Sha384", password.SHA384, false},
		{"md5", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d password.Digest
			err := d.UnmarshalText([]byte(tt.in))
			if tt.err {
				assert.ErrorIs(t, err, password.ErrUnsupportedDigest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}
