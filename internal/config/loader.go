// Package config provides configuration management for the growth optimizer.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and parses the configuration from file and environment variables.
// It expands environment variable placeholders in the YAML file (${VAR_NAME}).
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the configuration (${VAR} syntax)
	expanded := os.ExpandEnv(string(data))

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	v.SetEnvPrefix("GROWTH_OPTIMIZER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration with default values for optional
// fields. The defaults reproduce the observed study grids: a coarse odds
// sweep for the optimizer, and a fine odds/probability scan for the locator.
func LoadWithDefaults(configPath string) (*Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v.SetConfigType("yaml")
	v.SetEnvPrefix("GROWTH_OPTIMIZER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "growth-optimizer")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("simulation.initial_capital", 10000.0)
	v.SetDefault("simulation.periods", 10)
	v.SetDefault("simulation.trials", 1000)
	v.SetDefault("simulation.seed", 0)

	v.SetDefault("optimizer.odds_range.min", 2.5)
	v.SetDefault("optimizer.odds_range.max", 3.4)
	v.SetDefault("optimizer.odds_range.step", 0.1)
	v.SetDefault("optimizer.probability_range.min", 0.5)
	v.SetDefault("optimizer.probability_range.max", 0.5)
	v.SetDefault("optimizer.probability_range.step", 0.1)
	v.SetDefault("optimizer.target_growth", 0.01)
	v.SetDefault("optimizer.bet_fraction", 0.1)
	v.SetDefault("optimizer.cache_ttl_seconds", 3600)

	v.SetDefault("locator.odds_range.min", 2.1)
	v.SetDefault("locator.odds_range.max", 10.01)
	v.SetDefault("locator.odds_range.step", 0.01)
	v.SetDefault("locator.probability_range.min", 0.05)
	v.SetDefault("locator.probability_range.max", 0.74)
	v.SetDefault("locator.probability_range.step", 0.01)
	v.SetDefault("locator.target_growth", 0.01)
	v.SetDefault("locator.bet_fraction", 0.1)
	v.SetDefault("locator.output_path", "./output/probability_curve.csv")

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_connections", 4)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("metrics.path", "/metrics")

	// Read and expand the configuration file if it exists
	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	// If the file doesn't exist, continue with defaults and environment variables

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}
