// Package config provides configuration management for the Fairway Edge simulator.
package config

import (
	"time"

	"github.com/yourusername/fairway-edge/internal/models"
)

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Simulation SimulationConfig `mapstructure:"simulation" validate:"required"`
	Weights    models.WeightSet `mapstructure:"weights" validate:"required,min=1,dive"`
	Watch      WatchConfig      `mapstructure:"watch"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// SimulationConfig controls a single recompute
type SimulationConfig struct {
	CohortPath     string  `mapstructure:"cohort_path" validate:"required"`
	Trials         int     `mapstructure:"trials" validate:"required,gt=0,lte=1000000"`
	Seed           int64   `mapstructure:"seed"`
	Stake          float64 `mapstructure:"stake" validate:"gt=0"`
	MinEdgePercent float64 `mapstructure:"min_edge_percent" validate:"gte=0,lte=100"`
}

// WatchConfig controls scheduled recomputes in watch mode
type WatchConfig struct {
	Schedule         string `mapstructure:"schedule" validate:"omitempty,cronspec"`
	CacheTTLSeconds  int    `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
	HealthPort       int    `mapstructure:"health_port" validate:"omitempty,min=1,max=65535"`
	RecomputeOnStart bool   `mapstructure:"recompute_on_start"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging returns true if running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// CacheTTL returns the cohort cache lifetime
func (w WatchConfig) CacheTTL() time.Duration {
	return time.Duration(w.CacheTTLSeconds) * time.Second
}
