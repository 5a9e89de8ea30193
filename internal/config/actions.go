package config

import (
	"fmt"
	"os"
	"time"
)

const EnvActionsLatency = "DOCKET_ACTIONS_LATENCY"

// ActionsConfig holds simulated action dispatch settings.
type ActionsConfig struct {
	Latency string `toml:"latency"`
}

// LatencyDuration returns Latency as a time.Duration.
func (c *ActionsConfig) LatencyDuration() time.Duration {
	d, _ := time.ParseDuration(c.Latency)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ActionsConfig) Finalize() error {
	if c.Latency == "" {
		c.Latency = "100ms"
	}
	if v := os.Getenv(EnvActionsLatency); v != "" {
		c.Latency = v
	}
	if _, err := time.ParseDuration(c.Latency); err != nil {
		return fmt.Errorf("invalid latency: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *ActionsConfig) Merge(overlay *ActionsConfig) {
	if overlay.Latency != "" {
		c.Latency = overlay.Latency
	}
}
