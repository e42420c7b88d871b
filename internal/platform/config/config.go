package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string     `env:"SERVICE_NAME" envDefault:"brandbridge"`
	LogLevel    slog.Level `env:"LOG_LEVEL"    envDefault:"INFO"`
	LogFormat   string     `env:"LOG_FORMAT"   envDefault:"text"`
	PostgresDSN string     `env:"POSTGRES_DSN"`
	FixturePath string     `env:"FIXTURE_PATH"`

	// EnableCatalogRegistry resolves ledger files from the postgres asset
	// catalog when a DSN is configured.
	EnableCatalogRegistry bool `env:"ENABLE_CATALOG_REGISTRY" envDefault:"true"`
	EnableNotificationLog bool `env:"ENABLE_NOTIFICATION_LOG" envDefault:"true"`
	EnableMetrics         bool `env:"ENABLE_METRICS"          envDefault:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("unsupported LOG_FORMAT %q", cfg.LogFormat)
	}
	return cfg, nil
}

// UseCatalog reports whether the postgres file registry should be wired.
func (c Config) UseCatalog() bool {
	return c.EnableCatalogRegistry && strings.TrimSpace(c.PostgresDSN) != ""
}
