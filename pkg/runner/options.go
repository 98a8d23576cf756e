// Package runner provides multi-file formatting orchestration.
package runner

import "github.com/shkm/rubyfmt/pkg/config"

// Mode selects what the runner does with files that need formatting.
type Mode int

const (
	// ModeCheck reports files that need formatting without touching them.
	ModeCheck Mode = iota

	// ModeWrite rewrites files in place.
	ModeWrite
)

// Options controls multi-file formatting behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Mode selects check versus in-place write behavior.
	Mode Mode

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered Ruby. Defaults via DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories,
	// relative to WorkingDir.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// DetectRuby classifies extensionless files by content (shebang,
	// classifier) during directory walks.
	DetectRuby bool

	// Backup creates a sidecar backup before each in-place rewrite.
	Backup bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default set of Ruby file extensions.
func DefaultExtensions() []string {
	return []string{".rb", ".rake", ".gemspec", ".ru"}
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
