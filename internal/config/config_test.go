package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.Shutdown)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.Dir)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.False(t, cfg.Telemetry.LogsEnabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DIR", "/var/log/calculator")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_LOGS_ENABLED", "true")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Shutdown)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/calculator", cfg.Log.Dir)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.True(t, cfg.Telemetry.LogsEnabled)
}

func TestLoadFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "calculator.yaml")
	require.NoError(t, os.WriteFile(file, []byte("http:\n  addr: \":7000\"\nlog:\n  level: warn\n"), 0o600))

	cfg, err := Load(New(), file)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.HTTP.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "calculator.yaml")
	require.NoError(t, os.WriteFile(file, []byte("log:\n  level: warn\n"), 0o600))
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load(New(), file)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg, err := Load(New(), "")
		require.NoError(t, err)
		return cfg
	}

	tests := map[string]func(*Config){
		"empty addr":        func(c *Config) { c.HTTP.Addr = "" },
		"bad level":         func(c *Config) { c.Log.Level = "loud" },
		"zero read timeout": func(c *Config) { c.HTTP.ReadTimeout = 0 },
		"negative shutdown": func(c *Config) { c.Shutdown = -time.Second },
		"logs without otel": func(c *Config) { c.Telemetry.LogsEnabled = true },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
