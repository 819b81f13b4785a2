package config

import (
	"os"
	"path/filepath"
)

// AppDir returns the mqlforge directory under the user config dir
// (~/.config/mqlforge on Linux). Falls back to a dot directory in $HOME
// when the platform config dir cannot be resolved.
func AppDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ".mqlforge"
		}
		return filepath.Join(home, ".mqlforge")
	}
	return filepath.Join(base, "mqlforge")
}

// LogDir returns the directory diagnostic logs are written to.
func LogDir() string {
	return filepath.Join(AppDir(), "logs")
}

// DefaultOutputDir is where exported Expert Advisors land unless the user
// configures output_dir: an "MQL5" folder in the home directory, matching
// where MetaTrader users keep their sources.
func DefaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "MQL5"
	}
	return filepath.Join(home, "MQL5", "Experts")
}
