// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` for `.env` files and
// `github.com/caarlos0/env/v11` for struct parsing:
//
//   - The default `.env` in the working directory is read once, on first use,
//     and silently skipped when absent. LoadEnv reads explicit files instead.
//   - Load parses the environment into any struct annotated with `env` tags.
//   - Each configuration type is parsed once and cached for the process
//     lifetime; ResetCache and ForceReload exist for tests.
//
// # Usage
//
//	type Config struct {
//	    Output   string `env:"FORMCHECK_OUTPUT" envDefault:"text"`
//	    LogLevel string `env:"FORMCHECK_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// # Error Handling
//
// Failures wrap the sentinel errors ErrParsingConfig and ErrNilPointer, so
// callers can match them with errors.Is.
package config
