package configloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shkm/rubyfmt/internal/configloader"
	"github.com/shkm/rubyfmt/pkg/config"
)

// isolateUserConfig points XDG at an empty directory so a developer's own
// user config cannot leak into assertions. Setenv rules out t.Parallel for
// every test in this file.
func isolateUserConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolateUserConfig(t)
	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: t.TempDir(),
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, config.ColorAuto, result.Config.Color)
	assert.Equal(t, "info", result.Config.LogLevel)
	assert.False(t, result.Config.Backup)
	assert.Equal(t, 0, result.Config.Jobs)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoadProjectConfig(t *testing.T) {
	isolateUserConfig(t)
	dir := t.TempDir()
	writeConfig(t, dir, ".rubyfmt.yml", "backup: true\njobs: 3\nignore:\n  - vendor/**\n")

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.True(t, result.Config.Backup)
	assert.Equal(t, 3, result.Config.Jobs)
	assert.Equal(t, []string{"vendor/**"}, result.Config.Ignore)
	// Unset keys keep their defaults.
	assert.Equal(t, config.ColorAuto, result.Config.Color)
	assert.Len(t, result.LoadedFrom, 1)
}

func TestLoadProjectConfigUpwardSearch(t *testing.T) {
	isolateUserConfig(t)
	root := t.TempDir()
	writeConfig(t, root, ".rubyfmt.yml", "jobs: 2\n")
	nested := filepath.Join(root, "lib", "deep")
	require.NoError(t, os.MkdirAll(nested, 0755))

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: nested,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Config.Jobs)
}

func TestLoadUpwardSearchStopsAtVCSRoot(t *testing.T) {
	isolateUserConfig(t)
	root := t.TempDir()
	writeConfig(t, root, ".rubyfmt.yml", "jobs: 9\n")

	// The nested repo root bounds the search; the outer config is invisible.
	repo := filepath.Join(root, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: repo,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Config.Jobs)
}

func TestLoadExplicitPathReplacesProjectConfig(t *testing.T) {
	isolateUserConfig(t)
	dir := t.TempDir()
	writeConfig(t, dir, ".rubyfmt.yml", "jobs: 1\n")
	explicit := writeConfig(t, dir, "other.yml", "jobs: 7\n")

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: explicit,
		IgnoreEnv:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, result.Config.Jobs)
	assert.Equal(t, []string{explicit}, result.LoadedFrom)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	isolateUserConfig(t)
	_, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   t.TempDir(),
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yml"),
		IgnoreEnv:    true,
	})
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	isolateUserConfig(t)
	dir := t.TempDir()
	writeConfig(t, dir, ".rubyfmt.yml", "jobs: [not a number\n")

	_, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	isolateUserConfig(t)
	dir := t.TempDir()
	writeConfig(t, dir, ".rubyfmt.yml", "color: sometimes\n")

	_, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolateUserConfig(t)
	dir := t.TempDir()
	writeConfig(t, dir, ".rubyfmt.yml", "jobs: 2\nbackup: false\n")

	t.Setenv("RUBYFMT_JOBS", "5")
	t.Setenv("RUBYFMT_BACKUP", "true")
	t.Setenv("RUBYFMT_COLOR", "never")

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Config.Jobs)
	assert.True(t, result.Config.Backup)
	assert.Equal(t, config.ColorNever, result.Config.Color)
}

func TestLoadEnvIgnoresGarbage(t *testing.T) {
	isolateUserConfig(t)
	t.Setenv("RUBYFMT_JOBS", "many")
	t.Setenv("RUBYFMT_BACKUP", "kinda")

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Config.Jobs)
	assert.False(t, result.Config.Backup)
}
