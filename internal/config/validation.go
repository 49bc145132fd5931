// Package config provides configuration management for the growth optimizer.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	v.RegisterValidation("environment", validateEnvironment)
	v.RegisterValidation("loglevel", validateLogLevel)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	// Additional cross-field validations
	if err := validateCrossField(cfg); err != nil {
		return err
	}

	return nil
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	env := fl.Field().String()
	switch env {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	level := fl.Field().String()
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	if err := validateRange("optimizer.odds_range", cfg.Optimizer.OddsRange); err != nil {
		return err
	}
	if err := validateRange("optimizer.probability_range", cfg.Optimizer.ProbabilityRange); err != nil {
		return err
	}
	if err := validateRange("locator.odds_range", cfg.Locator.OddsRange); err != nil {
		return err
	}
	if err := validateRange("locator.probability_range", cfg.Locator.ProbabilityRange); err != nil {
		return err
	}

	if err := validateProbabilityBounds("optimizer.probability_range", cfg.Optimizer.ProbabilityRange); err != nil {
		return err
	}
	if err := validateProbabilityBounds("locator.probability_range", cfg.Locator.ProbabilityRange); err != nil {
		return err
	}

	if cfg.Optimizer.OddsRange.Min <= 1 {
		return fmt.Errorf("optimizer.odds_range.min must be greater than 1")
	}
	if cfg.Locator.OddsRange.Min <= 1 {
		return fmt.Errorf("locator.odds_range.min must be greater than 1")
	}

	if cfg.Database.Enabled {
		if cfg.Database.Host == "" || cfg.Database.Name == "" || cfg.Database.User == "" {
			return fmt.Errorf("database host, name and user are required when persistence is enabled")
		}
		if cfg.Database.Port < 1 || cfg.Database.Port > 65535 {
			return fmt.Errorf("database port must be between 1 and 65535")
		}
		if cfg.IsProduction() && cfg.Database.SSLMode == "disable" {
			return fmt.Errorf("production environment requires SSL mode to be 'require' or 'verify-full'")
		}
	}

	return nil
}

func validateRange(name string, r RangeConfig) error {
	if r.Step <= 0 {
		return fmt.Errorf("%s.step must be positive", name)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%s: max must not be below min", name)
	}
	return nil
}

func validateProbabilityBounds(name string, r RangeConfig) error {
	if r.Min < 0 || r.Max > 1 {
		return fmt.Errorf("%s must stay within [0, 1]", name)
	}
	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg string
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			errMsg += fmt.Sprintf("- Field '%s' is required\n", field)
		case "min", "max":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: %s constraint violated\n", field, tag)
		case "gt", "gte", "lt", "lte":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: numeric constraint %s violated\n", field, tag)
		case "environment":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: debug, info, warn, error\n", field)
		default:
			errMsg += fmt.Sprintf("- Field '%s' failed validation: %s (value '%v')\n", field, tag, value)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg)
}
