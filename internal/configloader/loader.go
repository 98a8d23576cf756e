// Package configloader resolves the rubyfmt configuration by discovering
// and merging config files, environment variables, and CLI flags.
package configloader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shkm/rubyfmt/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. Environment variables (RUBYFMT_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.rubyfmt.yml upward search)
//  4. User config ($XDG_CONFIG_HOME/rubyfmt/config.yaml)
//  5. Defaults
//
// CLI flags are applied on top by the command layer, which knows which
// flags were actually set.
func Load(opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	result := &LoadResult{
		Config: config.NewConfig(),
		Paths:  DiscoverPaths(workDir),
	}
	result.Paths.Explicit = opts.ExplicitPath

	// File layers, lowest precedence first. An explicit path replaces the
	// project config layer.
	layers := []string{result.Paths.User}
	if opts.ExplicitPath != "" {
		layers = append(layers, opts.ExplicitPath)
	} else {
		layers = append(layers, result.Paths.Project)
	}

	for _, path := range layers {
		if path == "" {
			continue
		}
		if err := loadFile(path, result.Config); err != nil {
			return nil, err
		}
		result.LoadedFrom = append(result.LoadedFrom, path)
	}

	if !opts.IgnoreEnv {
		applyEnv(result.Config)
	}

	if err := result.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return result, nil
}

// fileConfig mirrors config.Config with pointer fields so a file layer only
// overrides what it actually sets.
type fileConfig struct {
	Color          *string  `yaml:"color"`
	LogLevel       *string  `yaml:"log_level"`
	Backup         *bool    `yaml:"backup"`
	Extensions     []string `yaml:"extensions"`
	Ignore         []string `yaml:"ignore"`
	FollowSymlinks *bool    `yaml:"follow_symlinks"`
	DetectRuby     *bool    `yaml:"detect_ruby"`
	Jobs           *int     `yaml:"jobs"`
}

func loadFile(path string, cfg *config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var layer fileConfig
	if err := yaml.Unmarshal(data, &layer); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	layer.apply(cfg)
	return nil
}

func (fc *fileConfig) apply(cfg *config.Config) {
	if fc.Color != nil {
		cfg.Color = config.Color(*fc.Color)
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.Backup != nil {
		cfg.Backup = *fc.Backup
	}
	if len(fc.Extensions) > 0 {
		cfg.Extensions = fc.Extensions
	}
	if len(fc.Ignore) > 0 {
		cfg.Ignore = append(cfg.Ignore, fc.Ignore...)
	}
	if fc.FollowSymlinks != nil {
		cfg.FollowSymlinks = *fc.FollowSymlinks
	}
	if fc.DetectRuby != nil {
		cfg.DetectRuby = *fc.DetectRuby
	}
	if fc.Jobs != nil {
		cfg.Jobs = *fc.Jobs
	}
}
