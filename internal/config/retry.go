package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/docket-systems/docket/pkg/retry"
)

const (
	EnvRetryAttempts  = "DOCKET_RETRY_ATTEMPTS"
	EnvRetryBaseDelay = "DOCKET_RETRY_BASE_DELAY"
)

// RetryConfig bounds retried classification and agent invocations.
type RetryConfig struct {
	Attempts  int    `toml:"attempts"`
	BaseDelay string `toml:"base_delay"`
}

// Policy returns the finalized values as a retry.Policy.
func (c *RetryConfig) Policy() retry.Policy {
	d, _ := time.ParseDuration(c.BaseDelay)
	return retry.Policy{
		Attempts:  c.Attempts,
		BaseDelay: d,
	}
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *RetryConfig) Finalize() error {
	if c.Attempts == 0 {
		c.Attempts = 3
	}
	if c.BaseDelay == "" {
		c.BaseDelay = "1s"
	}
	if v := os.Getenv(EnvRetryAttempts); v != "" {
		if attempts, err := strconv.Atoi(v); err == nil {
			c.Attempts = attempts
		}
	}
	if v := os.Getenv(EnvRetryBaseDelay); v != "" {
		c.BaseDelay = v
	}
	if c.Attempts < 1 {
		return fmt.Errorf("invalid attempts: %d", c.Attempts)
	}
	if _, err := time.ParseDuration(c.BaseDelay); err != nil {
		return fmt.Errorf("invalid base_delay: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *RetryConfig) Merge(overlay *RetryConfig) {
	if overlay.Attempts != 0 {
		c.Attempts = overlay.Attempts
	}
	if overlay.BaseDelay != "" {
		c.BaseDelay = overlay.BaseDelay
	}
}
