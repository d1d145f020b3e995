// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"

	"nanp_normalizer/platform/phone"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// LoggingConfig provides logger settings.
type LoggingConfig interface {
	GetEnv() string
	GetLogLevel() string
}

// OutputConfig provides settings for rendering normalized numbers.
type OutputConfig interface {
	GetOutputFormat() string
	GetDefaultStyle() string
	IsStrict() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env          string
	LogLevel     string
	OutputFormat string
	DefaultStyle string
	Strict       bool
}

// LoggingConfig implementation
func (c *Config) GetEnv() string      { return c.Env }
func (c *Config) GetLogLevel() string { return c.LogLevel }

// OutputConfig implementation
func (c *Config) GetOutputFormat() string { return c.OutputFormat }
func (c *Config) GetDefaultStyle() string { return c.DefaultStyle }
func (c *Config) IsStrict() bool          { return c.Strict }

var outputFormats = []string{"json", "yaml", "text"}

// Load reads configuration from the environment, after merging a .env file if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:          getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		OutputFormat: strings.ToLower(strings.TrimSpace(getEnv("PHONE_OUTPUT_FORMAT", "json"))),
		DefaultStyle: strings.TrimSpace(getEnv("PHONE_DEFAULT_STYLE", "")),
		Strict:       strings.EqualFold(getEnv("PHONE_STRICT", "false"), "true"),
	}

	if !slices.Contains(outputFormats, cfg.OutputFormat) {
		return nil, fmt.Errorf("PHONE_OUTPUT_FORMAT must be one of %s, got %q", strings.Join(outputFormats, ", "), cfg.OutputFormat)
	}
	if cfg.DefaultStyle != "" {
		if _, err := phone.ParseStyle(cfg.DefaultStyle); err != nil {
			return nil, fmt.Errorf("PHONE_DEFAULT_STYLE: %w", err)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
