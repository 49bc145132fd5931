// Package config provides configuration management for the growth optimizer.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Simulation SimulationConfig `mapstructure:"simulation" validate:"required"`
	Optimizer  OptimizerConfig  `mapstructure:"optimizer" validate:"required"`
	Locator    LocatorConfig    `mapstructure:"locator" validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Metrics    MetricsConfig    `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// SimulationConfig represents Monte Carlo sampling configuration
type SimulationConfig struct {
	InitialCapital float64 `mapstructure:"initial_capital" validate:"required,gt=0"`
	Periods        int     `mapstructure:"periods" validate:"required,gte=1"`
	Trials         int     `mapstructure:"trials" validate:"required,gte=1"`
	Seed           int64   `mapstructure:"seed" validate:"gte=0"`
}

// RangeConfig represents a discretized inclusive parameter range
type RangeConfig struct {
	Min  float64 `mapstructure:"min"`
	Max  float64 `mapstructure:"max"`
	Step float64 `mapstructure:"step" validate:"required,gt=0"`
}

// OptimizerConfig represents grid optimizer configuration
type OptimizerConfig struct {
	OddsRange        RangeConfig `mapstructure:"odds_range" validate:"required"`
	ProbabilityRange RangeConfig `mapstructure:"probability_range" validate:"required"`
	TargetGrowth     float64     `mapstructure:"target_growth"`
	BetFraction      float64     `mapstructure:"bet_fraction" validate:"required,gt=0,lte=1"`
	Schedule         string      `mapstructure:"schedule"`
	CacheTTLSeconds  int         `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
}

// LocatorConfig represents probability locator configuration
type LocatorConfig struct {
	OddsRange        RangeConfig `mapstructure:"odds_range" validate:"required"`
	ProbabilityRange RangeConfig `mapstructure:"probability_range" validate:"required"`
	TargetGrowth     float64     `mapstructure:"target_growth"`
	BetFraction      float64     `mapstructure:"bet_fraction" validate:"required,gt=0,lte=1"`
	OutputPath       string      `mapstructure:"output_path" validate:"required"`
}

// DatabaseConfig represents optional run persistence configuration
type DatabaseConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode"`
	MaxConnections int    `mapstructure:"max_connections"`
}

// MetricsConfig represents metrics and health endpoint configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
