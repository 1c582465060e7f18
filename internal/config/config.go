// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types, and validates that required
// values are present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load defaults, then environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the FEEDBACK_ prefix. Keys are lowercased, the
	prefix is removed, and a double underscore marks nesting:

	  FEEDBACK_SERVER__PORT          -> server.port
	  FEEDBACK_DATABASE__MAX_CONNS   -> database.max_conns

	The bare DATABASE_URL variable is honoured as well, since that is where
	hosting platforms usually put the connection string.
*/

const (
	// EnvPrefix is the prefix every application env var carries.
	EnvPrefix = "FEEDBACK_"

	// DatabaseURLEnv is the unprefixed connection-string variable.
	DatabaseURLEnv = "DATABASE_URL"

	// ServiceName tags logs and APM data.
	ServiceName = "club-feedback"
)

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the number of requests per second allowed per client IP.
	// Zero disables limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// DatabaseConfig contains the PostgreSQL connection string and pool tuning.
type DatabaseConfig struct {
	URL             string        `koanf:"url" validate:"required"`
	MaxConns        int32         `koanf:"max_conns" validate:"required,min=1"`
	MinConns        int32         `koanf:"min_conns" validate:"min=0,ltefield=MaxConns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`

	// TLSSkipVerify forces TLS on every connection while skipping
	// verification of the server certificate.
	TLSSkipVerify bool `koanf:"tls_skip_verify"`
}

// defaults are loaded before the environment so every optional key has a value.
func defaults() map[string]any {
	obs := DefaultObservabilityConfig()
	return map[string]any{
		"primary.env":                 "development",
		"server.port":                 "8080",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.shutdown_timeout":     30,
		"server.cors_allowed_origins": []string{"*"},
		"server.rate_limit":           0.0,

		"database.max_conns":          int32(25),
		"database.min_conns":          int32(0),
		"database.conn_max_lifetime":  time.Hour,
		"database.conn_max_idle_time": 30 * time.Minute,
		"database.tls_skip_verify":    true,

		"observability.logging.level":                         obs.Logging.Level,
		"observability.logging.format":                        obs.Logging.Format,
		"observability.logging.slow_query_threshold":          obs.Logging.SlowQueryThreshold,
		"observability.new_relic.app_log_forwarding_enabled":  obs.NewRelic.AppLogForwardingEnabled,
		"observability.new_relic.distributed_tracing_enabled": obs.NewRelic.DistributedTracingEnabled,
		"observability.new_relic.debug_logging":               obs.NewRelic.DebugLogging,
		"observability.health_checks.enabled":                 obs.HealthChecks.Enabled,
		"observability.health_checks.timeout":                 obs.HealthChecks.Timeout,
	}
}

// envKey maps FEEDBACK_DATABASE__MAX_CONNS to database.max_conns.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// listKeys are the config keys holding a []string. Their env values are
// comma-separated, e.g.
// FEEDBACK_SERVER__CORS_ALLOWED_ORIGINS=https://a.example,https://b.example
var listKeys = map[string]bool{
	"server.cors_allowed_origins": true,
}

// envValue converts the raw env value for key. List keys are split on
// commas with blanks trimmed and empty items dropped.
func envValue(key, value string) any {
	if !listKeys[key] {
		return value
	}

	items := make([]string, 0, strings.Count(value, ",")+1)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// LoadConfig loads defaults and environment variables, unmarshals them into
// Config, validates the result and returns it.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading config defaults: %w", err)
	}

	// Bare DATABASE_URL first, so the prefixed key wins when both are set.
	err := k.Load(env.ProviderWithValue(DatabaseURLEnv, ".", func(key, value string) (string, interface{}) {
		if key != DatabaseURLEnv || value == "" {
			return "", nil
		}
		return "database.url", value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", DatabaseURLEnv, err)
	}

	err = k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		// Empty variables count as unset and keep the default.
		if value == "" {
			return "", nil
		}
		key = envKey(key)
		return key, envValue(key, value)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
