package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
api_base_url = "http://localhost:8080/v1"
request_timeout_seconds = 3
fahrenheit = true

[logging]
level = "debug"

[colors]
wind = "hi-yellow"
sky-condition = "cyan"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/v1", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout())
	assert.True(t, cfg.Fahrenheit)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, map[TokenClass]string{ClassWind: "hi-yellow", ClassSkyCondition: "cyan"}, cfg.Colors)
}

func TestLoadConfig_keepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(writeConfig(t, `fahrenheit = true`))
	require.NoError(t, err)

	assert.Equal(t, defaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, defaultTimeoutSeconds*time.Second, cfg.RequestTimeout())
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfig_invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"bad toml", `api_base_url = `, "failed to decode"},
		{"zero timeout", `request_timeout_seconds = 0`, "request_timeout_seconds must be positive"},
		{"empty url", `api_base_url = ""`, "api_base_url must not be empty"},
		{"unknown class", "[colors]\nremarks = \"red\"", "unknown token class"},
		{"unknown color", "[colors]\nwind = \"purple\"", "unknown color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoadConfig_missingExplicitPath(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
