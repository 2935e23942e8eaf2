package password

import "runtime"

// Config holds key derivation parameters.
// Every stored record depends on SaltBytes: the encoded form has no separator
// between key and salt, so changing it invalidates existing records.
type Config struct {
	SaltBytes  int    `env:"PASSWORD_SALT_BYTES" envDefault:"32"`
	KeyBytes   int    `env:"PASSWORD_KEY_BYTES" envDefault:"64"`
	Iterations int    `env:"PASSWORD_ITERATIONS" envDefault:"150000"`
	Digest     Digest `env:"PASSWORD_DIGEST" envDefault:"sha512"`

	// Workers caps concurrent key derivations (0 = number of CPUs)
	Workers int `env:"PASSWORD_WORKERS" envDefault:"0"`
}

// DefaultConfig returns default hashing configuration
func DefaultConfig() Config {
	return Config{
		SaltBytes:  32,
		KeyBytes:   64,
		Iterations: 150000,
		Digest:     SHA512,
		Workers:    runtime.NumCPU(),
	}
}

func (c Config) validate() error {
	if c.SaltBytes <= 0 || c.KeyBytes <= 0 || c.Iterations < 1 {
		return ErrInvalidConfig
	}
	if _, err := c.Digest.hashFunc(); err != nil {
		return err
	}
	return nil
}
