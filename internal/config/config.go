// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration
type Config struct {
	Port  string `env:"PORT"  envDefault:"8080"`
	Debug bool   `env:"DEBUG" envDefault:"false"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Optional; when set the catalog is read from PostgreSQL instead of the embedded data
	DatabaseURL string `env:"DATABASE_URL"`

	// Optional YAML file overriding the embedded catalog
	CatalogFile string `env:"CATALOG_FILE"`

	// exact | normalized
	MatchMode string `env:"MATCH_MODE" envDefault:"exact"`

	LodestoneBaseURL   string        `env:"LODESTONE_BASE_URL"    envDefault:"https://jp.finalfantasyxiv.com/lodestone"`
	FetchTimeout       time.Duration `env:"FETCH_TIMEOUT"         envDefault:"30s"`
	FetchMaxRetries    int           `env:"FETCH_MAX_RETRIES"     envDefault:"2"`
	FetchRatePerSecond float64       `env:"FETCH_RATE_PER_SECOND" envDefault:"1"`
}

// Load parses environment variables into a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if cfg.DatabaseURL != "" && cfg.CatalogFile != "" {
		return nil, fmt.Errorf("config: DATABASE_URL and CATALOG_FILE are mutually exclusive")
	}
	return cfg, nil
}
