package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shkm/rubyfmt/pkg/fsutil"
	"github.com/shkm/rubyfmt/pkg/runner"
)

const (
	messy = "foo\n\n\n\nbar\n"
	tidy  = "foo\n\nbar\n"
)

func TestRunCheckMode(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "messy.rb"), []byte(messy), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "clean.rb"), []byte(tidy), 0644))

	result, err := runner.New().Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: root,
		Mode:       runner.ModeCheck,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesChanged)
	assert.Equal(t, 0, result.Stats.FilesWritten)
	assert.True(t, result.NeedsFormatting())
	assert.False(t, result.HasErrors())

	// Check mode never touches the files.
	content, err := os.ReadFile(filepath.Join(root, "messy.rb"))
	require.NoError(t, err)
	assert.Equal(t, messy, string(content))
}

func TestRunWriteMode(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	messyPath := filepath.Join(root, "messy.rb")
	require.NoError(t, os.WriteFile(messyPath, []byte(messy), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "clean.rb"), []byte(tidy), 0644))

	result, err := runner.New().Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: root,
		Mode:       runner.ModeWrite,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesChanged)
	assert.Equal(t, 1, result.Stats.FilesWritten)

	content, err := os.ReadFile(messyPath)
	require.NoError(t, err)
	assert.Equal(t, tidy, string(content))
}

func TestRunWriteModeWithBackup(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	messyPath := filepath.Join(root, "messy.rb")
	require.NoError(t, os.WriteFile(messyPath, []byte(messy), 0644))

	result, err := runner.New().Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: root,
		Mode:       runner.ModeWrite,
		Backup:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.FilesWritten)

	require.True(t, fsutil.BackupExists(messyPath))
	backup, err := os.ReadFile(fsutil.BackupPath(messyPath))
	require.NoError(t, err)
	assert.Equal(t, messy, string(backup))
}

func TestRunPreservesFileMode(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := filepath.Join(root, "script.rb")
	require.NoError(t, os.WriteFile(path, []byte(messy), 0755))

	_, err := runner.New().Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: root,
		Mode:       runner.ModeWrite,
	})
	require.NoError(t, err)

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), stat.Mode().Perm())
}

func TestRunEmptyDirectory(t *testing.T) {
	t.Parallel()

	result, err := runner.New().Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: t.TempDir(),
		Mode:       runner.ModeCheck,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
	assert.False(t, result.NeedsFormatting())
}

func TestRunDeterministicOrder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	names := []string{"a.rb", "b.rb", "c.rb", "d.rb", "e.rb", "f.rb", "g.rb", "h.rb"}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(messy), 0644))
	}

	result, err := runner.New().Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: root,
		Mode:       runner.ModeCheck,
		Jobs:       4,
	})
	require.NoError(t, err)
	require.Len(t, result.Files, len(names))

	paths := make([]string, len(result.Files))
	for i, f := range result.Files {
		paths[i] = f.Path
	}
	assert.True(t, sort.StringsAreSorted(paths), "outcomes must be in discovery order")
}

func TestRunCollectsErrors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	missing := filepath.Join(root, "missing.rb")

	result, err := runner.New().Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: root,
		Mode:       runner.ModeCheck,
	})
	require.NoError(t, err)
	assert.False(t, result.HasErrors())

	// An explicitly named file that cannot be read surfaces as a per-file
	// error, not a run failure.
	_, err = runner.New().Run(context.Background(), runner.Options{
		Paths:      []string{missing},
		WorkingDir: root,
		Mode:       runner.ModeCheck,
	})
	assert.Error(t, err, "missing explicit path fails discovery")
}
