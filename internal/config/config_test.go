package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "LISTEN_ADDR", "CATALOG_DIR", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Env != "development" {
		t.Fatalf("Env = %q, want development", cfg.Env)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.CatalogDir != "" {
		t.Fatalf("CatalogDir = %q, want empty", cfg.CatalogDir)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9090")
	t.Setenv("CATALOG_DIR", "/etc/evaluacion/catalog")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg := Load()
	if cfg.Env != "production" || cfg.ListenAddr != "127.0.0.1:9090" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.CatalogDir != "/etc/evaluacion/catalog" {
		t.Fatalf("CatalogDir = %q", cfg.CatalogDir)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("ShutdownTimeout = %v, want 30s", cfg.ShutdownTimeout)
	}
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "pronto")
	if got := Load().ShutdownTimeout; got != 10*time.Second {
		t.Fatalf("ShutdownTimeout = %v, want default 10s", got)
	}
}
