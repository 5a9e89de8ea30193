package trace

import (
	"fmt"
	"os"
	"slices"
)

// Backend values accepted by the trace store configuration.
const (
	BackendAuto     = "auto"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

var backends = []string{BackendAuto, BackendPostgres, BackendMemory}

// Config selects the trace store backend. "auto" prefers postgres and falls
// back to in-memory when the database is unreachable at startup.
type Config struct {
	Backend string `toml:"backend"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Backend string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	if c.Backend == "" {
		c.Backend = BackendAuto
	}
	if env != nil && env.Backend != "" {
		if v := os.Getenv(env.Backend); v != "" {
			c.Backend = v
		}
	}
	if !slices.Contains(backends, c.Backend) {
		return fmt.Errorf("invalid trace backend: %q", c.Backend)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
}
