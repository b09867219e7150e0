package config

import (
	"os"
	"time"
)

// Config holds the server settings, all sourced from the environment.
type Config struct {
	Env             string
	ListenAddr      string
	CatalogDir      string
	ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// Load reads the server configuration from the environment. CATALOG_DIR is
// empty by default, which selects the embedded catalog.
func Load() Config {
	return Config{
		Env:             getenv("APP_ENV", "development"),
		ListenAddr:      getenv("LISTEN_ADDR", ":8080"),
		CatalogDir:      os.Getenv("CATALOG_DIR"),
		ShutdownTimeout: getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}
