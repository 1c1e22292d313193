package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultAPIBaseURL     = "https://api.aviationapi.com/v1"
	defaultTimeoutSeconds = 10
	configDirName         = "aviation-metar"
)

// Config holds user settings loaded from an optional TOML file
type Config struct {
	APIBaseURL            string                `toml:"api_base_url"`            // Base URL of the METAR/airport data provider
	RequestTimeoutSeconds int                   `toml:"request_timeout_seconds"` // Timeout for each provider request
	Fahrenheit            bool                  `toml:"fahrenheit"`              // Also show temperatures in °F
	Logging               LoggingConfig         `toml:"logging"`
	Colors                map[TokenClass]string `toml:"colors"` // Token class -> color name, overrides the default palette
}

// LoggingConfig contains application logging configuration
type LoggingConfig struct {
	Level string `toml:"level"` // Log level: "debug", "info", "warn", or "error"
}

// DefaultConfig returns the settings used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:            defaultAPIBaseURL,
		RequestTimeoutSeconds: defaultTimeoutSeconds,
		Logging:               LoggingConfig{Level: "warn"},
	}
}

// LoadConfig reads the config file at path over the defaults. An empty path
// falls back to the user config directory and, failing that, the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("api_base_url must not be empty")
	}
	if c.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("request_timeout_seconds must be positive, got %d", c.RequestTimeoutSeconds)
	}
	for class, name := range c.Colors {
		if !slices.Contains(TokenClasses, class) {
			return fmt.Errorf("unknown token class %q in colors", class)
		}
		if _, ok := colorAttributes[name]; !ok {
			return fmt.Errorf("unknown color %q for %s", name, class)
		}
	}
	return nil
}

// RequestTimeout returns the per-request timeout as a duration
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configDirName, "config.toml")
}
