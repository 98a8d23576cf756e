package configloader

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths represents discovered configuration file paths.
type ConfigPaths struct {
	// User is the user-level config path (e.g., ~/.config/rubyfmt/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.rubyfmt.yml).
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string
}

// projectConfigFiles are the config file names searched for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".rubyfmt.yml",
	".rubyfmt.yaml",
	"rubyfmt.yml",
	"rubyfmt.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root, bounding the
// upward project-config search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations:
//   - User config at $XDG_CONFIG_HOME/rubyfmt/config.{yaml,yml}
//   - Project config by searching upward from workDir for .rubyfmt.{yml,yaml}
func DiscoverPaths(workDir string) *ConfigPaths {
	return &ConfigPaths{
		User:    discoverUserConfig(),
		Project: discoverProjectConfig(workDir),
	}
}

func discoverUserConfig() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		if runtime.GOOS == "windows" {
			configHome = filepath.Join(home, "AppData", "Roaming")
		} else {
			configHome = filepath.Join(home, ".config")
		}
	}

	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join(configHome, "rubyfmt", name)
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

func discoverProjectConfig(workDir string) string {
	dir := workDir
	for {
		for _, name := range projectConfigFiles {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate
			}
		}

		// Stop at a VCS root.
		for _, marker := range vcsRootMarkers {
			if dirExists(filepath.Join(dir, marker)) {
				return ""
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func fileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}

func dirExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.IsDir()
}
