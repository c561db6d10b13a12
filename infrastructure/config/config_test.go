package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"todo-backend/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CONFIG_FILE", "SERVER_ADDRESS", "ENVIRONMENT", "READ_TIMEOUT", "WRITE_TIMEOUT",
	"IDLE_TIMEOUT", "SHUTDOWN_TIMEOUT", "MAX_BODY_BYTES", "LEGACY_NOT_FOUND_STATUS",
	"LOG_LEVEL", "DEBUG_ERRORS", "AWS_REGION", "EVENT_BUS_NAME", "EVENT_SOURCE",
	"ENABLE_METRICS", "ENABLE_TRACING", "ENABLE_CORS", "ALLOWED_ORIGINS",
}

// clearEnv blanks every variable the loader reads; empty means unset
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, config.Development, cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.False(t, cfg.LegacyNotFoundStatus)
	assert.True(t, cfg.EnableMetrics)
	assert.True(t, cfg.EnableCORS)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.ConfigFile)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("READ_TIMEOUT", "5s")
	t.Setenv("LEGACY_NOT_FOUND_STATUS", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("EVENT_BUS_NAME", "todos")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.True(t, cfg.LegacyNotFoundStatus)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "todos", cfg.EventBusName)
}

func TestLoadFile_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "config.yaml",
			content: `
server_address: ":7070"
log_level: debug
read_timeout: 3s
max_body_bytes: 2048
allowed_origins: ["https://app.example"]
enable_metrics: false
`,
		},
		{
			name: "toml",
			file: "config.toml",
			content: `
server_address = ":7070"
log_level = "debug"
read_timeout = "3s"
max_body_bytes = 2048
allowed_origins = ["https://app.example"]
enable_metrics = false
`,
		},
		{
			name: "json",
			file: "config.json",
			content: `{
  "server_address": ":7070",
  "log_level": "debug",
  "read_timeout": "3s",
  "max_body_bytes": 2048,
  "allowed_origins": ["https://app.example"],
  "enable_metrics": false
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := writeFile(t, tt.file, tt.content)

			cfg, err := config.LoadFile(path)
			require.NoError(t, err)

			assert.Equal(t, ":7070", cfg.ServerAddress)
			assert.Equal(t, "debug", cfg.LogLevel)
			assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
			assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
			assert.Equal(t, []string{"https://app.example"}, cfg.AllowedOrigins)
			assert.False(t, cfg.EnableMetrics)
			assert.Equal(t, path, cfg.ConfigFile)

			// Untouched keys keep their defaults
			assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
			assert.True(t, cfg.EnableCORS)
		})
	}
}

func TestLoadFile_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "error")
	path := writeFile(t, "config.yaml", "log_level: debug\n")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errMsg  string
	}{
		{"unsupported extension", "config.ini", "a=b", "unsupported config file format"},
		{"unknown key", "config.yaml", "no_such_key: 1\n", "no_such_key"},
		{"malformed yaml", "config.yaml", "log_level: [\n", "failed to parse"},
		{"invalid value", "config.yaml", "log_level: verbose\n", "log_level must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := writeFile(t, tt.file, tt.content)

			_, err := config.LoadFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open config file")
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*config.Config) {},
		},
		{
			name:    "unknown environment",
			mutate:  func(c *config.Config) { c.Environment = "qa" },
			wantErr: true,
			errMsg:  "environment must be one of",
		},
		{
			name:    "missing server address",
			mutate:  func(c *config.Config) { c.ServerAddress = "" },
			wantErr: true,
			errMsg:  "server_address is required",
		},
		{
			name:    "non-positive body limit",
			mutate:  func(c *config.Config) { c.MaxBodyBytes = 0 },
			wantErr: true,
			errMsg:  "max_body_bytes must be greater than 0",
		},
		{
			name: "cors without origins",
			mutate: func(c *config.Config) {
				c.EnableCORS = true
				c.AllowedOrigins = nil
			},
			wantErr: true,
			errMsg:  "allowed_origins",
		},
		{
			name: "cors disabled without origins",
			mutate: func(c *config.Config) {
				c.EnableCORS = false
				c.AllowedOrigins = nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
