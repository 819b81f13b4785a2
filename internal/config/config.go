// Package config resolves runtime settings for mqlforge. Values come from
// viper: an optional config file plus environment variables, with
// GEMINI_API_KEY honored directly because that is what the Gemini tooling
// ecosystem exports. The generation model and reasoning budget are fixed
// constants owned by the prompt package, deliberately not configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the resolved runtime settings.
type Config struct {
	APIKey    string `mapstructure:"api_key"`
	OutputDir string `mapstructure:"output_dir"`
}

// FromViper builds a Config from the already-initialized viper instance,
// applying environment fallbacks and defaults.
func FromViper() Config {
	cfg := Config{
		APIKey:    viper.GetString("api_key"),
		OutputDir: viper.GetString("output_dir"),
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir()
	}
	return cfg
}

// ValidationError describes a single config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for a single validation error.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// Validate checks the Config for completeness. It returns a slice of all
// discovered issues rather than stopping at the first one. A missing API
// key is reported here so `mqlforge config` can flag it up front, even
// though the generation client re-checks it per call.
func (c Config) Validate() []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(c.APIKey) == "" {
		errs = append(errs, ValidationError{
			Field:   "api_key",
			Message: "not set (export GEMINI_API_KEY or add api_key to the config file)",
		})
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, ValidationError{
			Field:   "output_dir",
			Message: "required field is empty",
		})
	}

	return errs
}

// Redacted returns the API key with all but the last four characters
// masked, for display in `mqlforge config`.
func (c Config) Redacted() string {
	key := strings.TrimSpace(c.APIKey)
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
