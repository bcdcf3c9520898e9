// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup.
type Config struct {
	// DBPath is the SQLite database location. Empty means the default
	// per-user data path.
	DBPath string

	// Addr is the HTTP listen address.
	Addr string

	// Env selects logger and gin mode: "dev" or "prod".
	Env string

	// CORSOrigins is the allowed origin list for browser clients. Empty
	// means allow all, which is only acceptable in dev.
	CORSOrigins []string
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first when present; real environment
// variables win over it.
func Load() Config {
	// Ignore a missing .env; it is a dev convenience, not a requirement.
	_ = godotenv.Load()

	cfg := Config{
		DBPath: os.Getenv("PREPWISE_DB"),
		Addr:   getenvDefault("PREPWISE_ADDR", ":8080"),
		Env:    getenvDefault("PREPWISE_ENV", "dev"),
	}
	if origins := os.Getenv("PREPWISE_CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}
	return cfg
}

// IsProd reports whether the server runs in production mode.
func (c Config) IsProd() bool {
	return c.Env == "prod"
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
