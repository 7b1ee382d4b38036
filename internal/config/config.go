// Package config loads service configuration from defaults, an optional YAML
// file and the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "USERBLOG"

// Config represents the complete application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Security SecurityConfig `mapstructure:"security"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
	Events   EventsConfig   `mapstructure:"events"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StoreConfig selects the record store backend.
type StoreConfig struct {
	// Driver is "memory" or "sqlite". Both are volatile.
	Driver string `mapstructure:"driver"`

	// SQLiteDSN is used by the sqlite driver. Empty means a private
	// in-memory database.
	SQLiteDSN string `mapstructure:"sqlite_dsn"`
}

// SecurityConfig holds settings that trade parity for safety.
type SecurityConfig struct {
	// HashPasswords stores bcrypt hashes instead of the submitted password.
	HashPasswords bool `mapstructure:"hash_passwords"`
}

// RabbitMQConfig holds RabbitMQ connection details. An empty URL disables
// event forwarding.
type RabbitMQConfig struct {
	URL   string `mapstructure:"url"`
	Queue string `mapstructure:"queue"`
}

// Enabled reports whether a broker URL is configured.
func (c RabbitMQConfig) Enabled() bool {
	return c.URL != ""
}

// EventsConfig tunes the in-process event bus.
type EventsConfig struct {
	BufferSize int64 `mapstructure:"buffer_size"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("store.driver", StoreMemory)
	v.SetDefault("store.sqlite_dsn", "")

	v.SetDefault("security.hash_passwords", false)

	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("rabbitmq.queue", "blog_events")

	v.SetDefault("events.buffer_size", 100)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// Load builds a Config from v. The file named by CONFIG_FILE, when set, is
// merged under the environment.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names kept for existing deployments.
	_ = v.BindEnv("server.addr", EnvPrefix+"_SERVER_ADDR", "APP_PORT")
	_ = v.BindEnv("rabbitmq.url", EnvPrefix+"_RABBITMQ_URL", "RABBITMQ_URL")
	_ = v.BindEnv("config_file", "CONFIG_FILE")

	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	switch c.Store.Driver {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("unsupported store.driver %q (want %q or %q)", c.Store.Driver, StoreMemory, StoreSQLite)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log.format %q", c.Log.Format)
	}
	if c.Events.BufferSize < 0 {
		return fmt.Errorf("events.buffer_size must not be negative")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/'")
	}
	return nil
}
