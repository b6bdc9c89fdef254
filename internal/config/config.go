// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/aristath/backtest/pkg/analytics"
)

// Config holds application configuration
type Config struct {
	Port               int           `validate:"min=1,max=65535"`
	LogLevel           string        `validate:"oneof=debug info warn warning error"`
	LogPretty          bool
	DevMode            bool
	BacktestAPIURL     string        `validate:"required,url"`
	BacktestAPITimeout time.Duration `validate:"gt=0"`
	AnalysisConfigPath string
	// Analysis holds the defaults overlaid with AnalysisConfigPath, when set
	Analysis analytics.Options
}

var validate = validator.New()

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnvAsInt("PORT", 8001),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogPretty:          getEnvAsBool("LOG_PRETTY", true),
		DevMode:            getEnvAsBool("DEV_MODE", false),
		BacktestAPIURL:     getEnv("BACKTEST_API_URL", "http://localhost:8000/api"),
		BacktestAPITimeout: getEnvAsDuration("BACKTEST_API_TIMEOUT", 30*time.Second),
		AnalysisConfigPath: getEnv("ANALYSIS_CONFIG", ""),
		Analysis:           analytics.DefaultOptions(),
	}

	if cfg.AnalysisConfigPath != "" {
		opts, err := LoadAnalysisOptions(cfg.AnalysisConfigPath)
		if err != nil {
			return nil, err
		}
		cfg.Analysis = opts
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every setting is within range
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("45s") or a bare number of seconds
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
