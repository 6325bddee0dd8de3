package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// RankingSize is the default N for the top-N city rankings.
	RankingSize int `env:"RANKING_SIZE" envDefault:"10"`

	// Mapbox geocoding configuration. Disabled by default; the embedded
	// coordinate table covers the dataset without network access.
	MapboxToken     string        `env:"MAPBOX_TOKEN"`
	MapboxEnabled   bool          `env:"-"`
	MapboxTimeout   time.Duration `env:"MAPBOX_TIMEOUT" envDefault:"5s"`
	MapboxCacheSize int           `env:"MAPBOX_CACHE_SIZE" envDefault:"1000"`
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	// Token presence implies enabled, unless MAPBOX_ENABLED says otherwise.
	cfg.MapboxEnabled = cfg.MapboxToken != ""
	if v := os.Getenv("MAPBOX_ENABLED"); v != "" {
		cfg.MapboxEnabled = v == "true"
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if cfg.RankingSize <= 0 {
		return nil, errors.New("RANKING_SIZE must be positive")
	}
	if cfg.MapboxTimeout <= 0 {
		return nil, errors.New("MAPBOX_TIMEOUT must be positive")
	}
	if cfg.MapboxCacheSize <= 0 {
		return nil, errors.New("MAPBOX_CACHE_SIZE must be positive")
	}
	if cfg.MapboxEnabled && cfg.MapboxToken == "" {
		return nil, errors.New("MAPBOX_ENABLED is true but MAPBOX_TOKEN is not set")
	}

	return cfg, nil
}
