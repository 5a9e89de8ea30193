package extraction

import "os"

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// Config holds the language model settings. The API key is only accepted
// through the environment, never from config files.
type Config struct {
	Name   string `toml:"name"`
	APIKey string `toml:"-"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Name   string
	APIKey string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	if c.Name == "" {
		c.Name = DefaultModel
	}
	if env != nil {
		if env.Name != "" {
			if v := os.Getenv(env.Name); v != "" {
				c.Name = v
			}
		}
		if env.APIKey != "" {
			if v := os.Getenv(env.APIKey); v != "" {
				c.APIKey = v
			}
		}
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
