// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment,
//     falling back to ./.env when no files are given.
//   - Load parses the environment into any struct using `env` and
//     `envDefault` field tags and caches the result per type.
//   - MustLoad panics on failure, for configuration the process needs.
//   - Parse fills a struct from an explicit map, which keeps tests hermetic.
//
// Every package in this module exposes a Config struct with env tags and a
// DefaultConfig constructor, so cmd/server only calls Load for each of them.
//
// # Usage
//
// First, create a struct describing your configuration and annotate its fields
// with `env` tags:
//
//	type DatabaseConfig struct {
//	    Host string `env:"DB_HOST,required"`
//	    Port int    `env:"DB_PORT" envDefault:"5432"`
//	    User string `env:"DB_USER,required"`
//	    Pass string `env:"DB_PASS,required"`
//	}
//
// Load the default `.env` file (optional) then populate the struct:
//
//	import "github.com/dmitrymomot/authkit/pkg/config"
//
//	func main() {
//	    // Optionally load one or many custom .env files before parsing.
//	    if err := config.LoadEnv("./config/.env" /* more files ... */); err != nil {
//	        log.Fatalf("loading env: %v", err)
//	    }
//
//	    var db DatabaseConfig
//	    if err := config.Load(&db); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//
//	    // db is now populated and cached for future calls.
//	}
//
// Subsequent calls to `config.Load(&db)` will be served from the in-memory cache
// without re-parsing.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with errors.Is:
//
//   - ErrParsingConfig: failed to parse env vars into the struct.
//   - ErrLoadingEnvFile: an explicitly requested .env file could not be read.
//   - ErrInvalidConfigType: the target is not a struct.
//   - ErrNilPointer: nil pointer passed to Load, MustLoad or Parse.
//
// Use ResetCache between tests that change the process environment.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
