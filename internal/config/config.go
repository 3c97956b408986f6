// Package config resolves srgn's environment-variable configuration —
// worker pool size, the German word-list path, and log level — following
// the teacher's own LoadConfig shape (an os.Getenv-driven struct with safe
// defaults). CLI flags always take precedence over these; see cmd/srgn.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/oxhq/srgn/internal/logging"
)

// Config holds srgn's environment-derived defaults.
type Config struct {
	Workers        int
	GermanWordlist string // path to an external word list; empty uses the embedded seed
	LogLevel       logging.Level
}

// Load reads SRGN_WORKERS, SRGN_GERMAN_WORDLIST, and SRGN_LOG_LEVEL from
// the environment, applying safe defaults. Call LoadDotenv first so a
// project-local .env can supply these during development.
func Load() Config {
	cfg := Config{
		Workers:  0, // 0 means "let batch.Run pick a runtime.NumCPU()-based default"
		LogLevel: logging.Info,
	}

	if v := os.Getenv("SRGN_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}
	if v := os.Getenv("SRGN_GERMAN_WORDLIST"); v != "" {
		cfg.GermanWordlist = v
	}
	if v := os.Getenv("SRGN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = logging.ParseLevel(v)
	}

	return cfg
}

// LoadDotenv best-effort loads a project-local .env file. A missing file is
// not an error — .env is a development convenience, not a requirement.
func LoadDotenv() {
	_ = godotenv.Load()
}
