// Package config defines core configuration types for rubyfmt.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

import "fmt"

// Color controls when output is colorized.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// IsValid returns true if the color mode is recognized.
func (c Color) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config holds the resolved rubyfmt configuration.
type Config struct {
	// Color controls colorized output: auto, always, never.
	Color Color `yaml:"color"`

	// LogLevel is the logging verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Backup creates a sidecar backup before rewriting a file in place.
	Backup bool `yaml:"backup"`

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) treated as Ruby during discovery. Empty means the defaults.
	Extensions []string `yaml:"extensions"`

	// Ignore holds glob patterns for files or directories to skip.
	Ignore []string `yaml:"ignore"`

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool `yaml:"follow_symlinks"`

	// DetectRuby classifies extensionless files by content during
	// discovery (shebang, classifier).
	DetectRuby bool `yaml:"detect_ruby"`

	// Jobs is the maximum number of concurrent workers; 0 means auto.
	Jobs int `yaml:"jobs"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Color:    ColorAuto,
		LogLevel: "info",
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Color != "" && !c.Color.IsValid() {
		return fmt.Errorf("invalid color mode %q (want auto, always, or never)", c.Color)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be non-negative, got %d", c.Jobs)
	}
	return nil
}
