package config

import (
	"log/slog"
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"SERVICE_NAME", "LOG_LEVEL", "LOG_FORMAT", "POSTGRES_DSN", "ENABLE_METRICS"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServiceName != "brandbridge" || cfg.LogLevel != slog.LevelInfo || cfg.LogFormat != "text" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.UseCatalog() {
		t.Fatalf("expected catalog disabled without dsn")
	}
	if !cfg.EnableMetrics {
		t.Fatalf("expected metrics enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVICE_NAME", "console")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/assets")
	t.Setenv("ENABLE_CATALOG_REGISTRY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.LogLevel != slog.LevelDebug || cfg.LogFormat != "json" || !cfg.UseCatalog() {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
