// Package config loads the service configuration from TOML files,
// environment overlays, and environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/docket-systems/docket/internal/extraction"
	"github.com/docket-systems/docket/internal/trace"
	"github.com/docket-systems/docket/pkg/database"
	"github.com/docket-systems/docket/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvDocketEnv             = "DOCKET_ENV"
	EnvDocketShutdownTimeout = "DOCKET_SHUTDOWN_TIMEOUT"
	EnvDocketVersion         = "DOCKET_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "DOCKET_DB_HOST",
	Port:            "DOCKET_DB_PORT",
	Name:            "DOCKET_DB_NAME",
	User:            "DOCKET_DB_USER",
	Password:        "DOCKET_DB_PASSWORD",
	SSLMode:         "DOCKET_DB_SSL_MODE",
	MaxOpenConns:    "DOCKET_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "DOCKET_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DOCKET_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "DOCKET_DB_CONN_TIMEOUT",
}

var traceEnv = &trace.Env{
	Backend: "DOCKET_TRACE_BACKEND",
}

var archiveEnv = &storage.Env{
	ContainerName:    "DOCKET_ARCHIVE_CONTAINER_NAME",
	ConnectionString: "DOCKET_ARCHIVE_CONNECTION_STRING",
}

var modelEnv = &extraction.Env{
	Name:   "DOCKET_MODEL_NAME",
	APIKey: "GOOGLE_API_KEY",
}

// Config is the root configuration for the Docket service.
type Config struct {
	Server          ServerConfig      `toml:"server"`
	Database        database.Config   `toml:"database"`
	Trace           trace.Config      `toml:"trace"`
	Archive         storage.Config    `toml:"archive"`
	Model           extraction.Config `toml:"model"`
	API             APIConfig         `toml:"api"`
	Actions         ActionsConfig     `toml:"actions"`
	Retry           RetryConfig       `toml:"retry"`
	ShutdownTimeout string            `toml:"shutdown_timeout"`
	Version         string            `toml:"version"`
}

// Env returns the DOCKET_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvDocketEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Trace.Merge(&overlay.Trace)
	c.Archive.Merge(&overlay.Archive)
	c.Model.Merge(&overlay.Model)
	c.API.Merge(&overlay.API)
	c.Actions.Merge(&overlay.Actions)
	c.Retry.Merge(&overlay.Retry)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Trace.Finalize(traceEnv); err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	if err := c.Archive.Finalize(archiveEnv); err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	if err := c.Model.Finalize(modelEnv); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Actions.Finalize(); err != nil {
		return fmt.Errorf("actions: %w", err)
	}
	if err := c.Retry.Finalize(); err != nil {
		return fmt.Errorf("retry: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvDocketShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvDocketVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvDocketEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
