package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shkm/rubyfmt/pkg/fsutil"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "a.rb", "puts 1\n")

	content, info, err := fsutil.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "puts 1\n", string(content))
	require.NotNil(t, info)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, int64(7), info.Size)
}

func TestReadFileErrors(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.rb"))
		assert.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		assert.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "anything")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeTemp(t, "a.rb", "original\n")

	_, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	modified, err := fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.False(t, modified)

	require.NoError(t, os.WriteFile(path, []byte("changed!\n"), 0644))

	modified, err = fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)
}

func TestCheckModifiedSameContentDifferentModTime(t *testing.T) {
	t.Parallel()

	// A touch without a content change trips the quick check but not the
	// hash check.
	ctx := context.Background()
	path := writeTemp(t, "a.rb", "stable\n")

	_, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	future := time.Now().Add(2 * time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	modified, err := fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.False(t, modified)
}

func TestCheckModifiedDeletedFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeTemp(t, "a.rb", "here\n")

	_, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	modified, err := fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)
}

func TestCheckModifiedNilInfo(t *testing.T) {
	t.Parallel()

	_, err := fsutil.CheckModified(context.Background(), nil)
	assert.ErrorIs(t, err, fsutil.ErrNilFileInfo)
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeTemp(t, "a.rb", "old\n")

	require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("new\n"), 0600))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(content))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), stat.Mode().Perm())

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteAtomicDefaultMode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "new.rb")
	require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("x\n"), 0))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fsutil.DefaultFileMode, stat.Mode().Perm())
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeTemp(t, "a.rb", "same\n")

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("same\n"), 0644)
	require.NoError(t, err)
	assert.False(t, written)

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("different\n"), 0644)
	require.NoError(t, err)
	assert.True(t, written)

	missing := filepath.Join(t.TempDir(), "missing.rb")
	written, err = fsutil.WriteAtomicIfChanged(ctx, missing, []byte("fresh\n"), 0644)
	require.NoError(t, err)
	assert.True(t, written)
}

func TestBackupLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeTemp(t, "a.rb", "original\n")

	assert.False(t, fsutil.BackupExists(path))

	created, err := fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, fsutil.BackupExists(path))

	// Idempotent: a second backup never overwrites the first.
	require.NoError(t, os.WriteFile(path, []byte("modified\n"), 0644))
	created, err = fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.False(t, created)

	restored, err := fsutil.RestoreBackup(ctx, path)
	require.NoError(t, err)
	assert.True(t, restored)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original\n", string(content))
}

func TestRestoreBackupWithoutBackup(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "a.rb", "x\n")

	restored, err := fsutil.RestoreBackup(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, restored)
}
