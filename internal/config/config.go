// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from flags and environment.
type Config struct {
	// Server
	Port           int   `json:"port,omitempty"`             // HTTP port
	MaxUploadBytes int64 `json:"max_upload_bytes,omitempty"` // Largest accepted résumé upload

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // json or pretty

	// Analysis defaults
	DefaultMinExperience  int    `json:"default_min_experience,omitempty"`
	DefaultEducationLevel string `json:"default_education_level,omitempty"`
	Concurrency           int    `json:"concurrency,omitempty"` // Parallel files in batch analysis

	// Behavior
	UseBrowser bool            `json:"use_browser,omitempty"` // Headless browser fallback for job URLs
	RateLimit  RateLimitConfig `json:"rate_limit"`
}

// RateLimitConfig configures the per-client HTTP rate limiter.
type RateLimitConfig struct {
	Enabled           bool `json:"enabled"`
	RequestsPerMinute int  `json:"requests_per_minute,omitempty"`
	Burst             int  `json:"burst,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:                  8080,
		MaxUploadBytes:        10 << 20,
		LogLevel:              "info",
		LogFormat:             "json",
		DefaultEducationLevel: string(types.EducationAny),
		Concurrency:           4,
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 60,
			Burst:             10,
		},
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Load reads the file at path when one is given, fills gaps from Defaults, applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	if c.DefaultMinExperience < 0 {
		return fmt.Errorf("config error: 'default_min_experience' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.RateLimit.RequestsPerMinute < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("config error: rate limit values must be non-negative")
	}
	if _, err := types.ParseEducationLevel(c.DefaultEducationLevel); err != nil {
		return fmt.Errorf("config error: 'default_education_level': %w", err)
	}
	switch c.LogFormat {
	case "", "json", "pretty":
	default:
		return fmt.Errorf("config error: 'log_format' must be json or pretty")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.DefaultEducationLevel == "" {
		result.DefaultEducationLevel = defaults.DefaultEducationLevel
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.DefaultMinExperience == 0 {
		result.DefaultMinExperience = defaults.DefaultMinExperience
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields cannot distinguish unset from false, so an absent rate_limit
	// block takes the defaults as a whole
	if result.RateLimit == (RateLimitConfig{}) {
		result.RateLimit = defaults.RateLimit
	}
	if result.RateLimit.RequestsPerMinute == 0 {
		result.RateLimit.RequestsPerMinute = defaults.RateLimit.RequestsPerMinute
	}
	if result.RateLimit.Burst == 0 {
		result.RateLimit.Burst = defaults.RateLimit.Burst
	}

	return result
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_UPLOAD_BYTES %q: %w", v, err)
		}
		c.MaxUploadBytes = n
	}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_ENABLED %q: %w", v, err)
		}
		c.RateLimit.Enabled = enabled
	}
	return nil
}
