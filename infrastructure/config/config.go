package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"todo-backend/pkg/utils"
)

// Environments
const (
	Development = "development"
	Staging     = "staging"
	Production  = "production"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress   string        `mapstructure:"server_address" validate:"required"`
	Environment     string        `mapstructure:"environment" validate:"oneof=development staging production"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes" validate:"gt=0"`

	// Respond to unknown todo ids with 200 instead of 404, body unchanged
	LegacyNotFoundStatus bool `mapstructure:"legacy_not_found_status"`

	// Logging
	LogLevel    string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	DebugErrors bool   `mapstructure:"debug_errors"`

	// AWS configuration
	AWSRegion    string `mapstructure:"aws_region"`
	EventBusName string `mapstructure:"event_bus_name"`
	EventSource  string `mapstructure:"event_source" validate:"required_with=EventBusName"`

	// Feature flags
	EnableMetrics  bool     `mapstructure:"enable_metrics"`
	EnableTracing  bool     `mapstructure:"enable_tracing"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required_if=EnableCORS true,dive,required"`

	// ConfigFile is the file the configuration was layered from, if any
	ConfigFile string `mapstructure:"-"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		ServerAddress:   ":8080",
		Environment:     Development,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		MaxBodyBytes:    1 << 20,
		LogLevel:        "info",
		AWSRegion:       "us-east-1",
		EventSource:     "todo-backend",
		EnableMetrics:   true,
		EnableTracing:   false,
		EnableCORS:      true,
		AllowedOrigins:  []string{"*"},
	}
}

// LoadConfig loads configuration from defaults, the file named by CONFIG_FILE
// and environment variables, in that order of precedence
func LoadConfig() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_FILE"))
}

// LoadFile is LoadConfig with an explicit config file path. An empty path
// skips the file layer.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
		cfg.ConfigFile = path
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// applyEnv overlays environment variables, the highest priority source
func applyEnv(cfg *Config) {
	cfg.ServerAddress = getEnv("SERVER_ADDRESS", cfg.ServerAddress)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.ReadTimeout = getEnvDuration("READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = getEnvDuration("WRITE_TIMEOUT", cfg.WriteTimeout)
	cfg.IdleTimeout = getEnvDuration("IDLE_TIMEOUT", cfg.IdleTimeout)
	cfg.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.MaxBodyBytes = int64(getEnvInt("MAX_BODY_BYTES", int(cfg.MaxBodyBytes)))
	cfg.LegacyNotFoundStatus = getEnvBool("LEGACY_NOT_FOUND_STATUS", cfg.LegacyNotFoundStatus)

	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.DebugErrors = getEnvBool("DEBUG_ERRORS", cfg.DebugErrors)

	cfg.AWSRegion = getEnv("AWS_REGION", cfg.AWSRegion)
	cfg.EventBusName = getEnv("EVENT_BUS_NAME", cfg.EventBusName)
	cfg.EventSource = getEnv("EVENT_SOURCE", cfg.EventSource)

	cfg.EnableMetrics = getEnvBool("ENABLE_METRICS", cfg.EnableMetrics)
	cfg.EnableTracing = getEnvBool("ENABLE_TRACING", cfg.EnableTracing)
	cfg.EnableCORS = getEnvBool("ENABLE_CORS", cfg.EnableCORS)
	cfg.AllowedOrigins = getEnvList("ALLOWED_ORIGINS", cfg.AllowedOrigins)
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable ("15s", "2m") with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvList gets a comma separated environment variable with a default value
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
