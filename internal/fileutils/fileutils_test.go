package fileutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"moneybook/ledger/internal/fileutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(tmpDir, "nonexistent")))

	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))
	assert.False(t, fileutils.DirectoryExists(testFile))
}

func TestEnsureDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	nested := filepath.Join(tmpDir, "a", "b", "c")
	require.NoError(t, fileutils.EnsureDirectoryExists(nested))
	assert.True(t, fileutils.DirectoryExists(nested))

	// Existing directory is fine
	assert.NoError(t, fileutils.EnsureDirectoryExists(nested))
}

func TestWriteFileCreatesParents(t *testing.T) {
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "nested", "data.json")
	require.NoError(t, fileutils.WriteFile(target, []byte("{}"), 0644))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestCreateFileCreatesParents(t *testing.T) {
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "nested", "out.csv")
	f, err := fileutils.CreateFile(target)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
}

func TestCreateFileBlockedParent(t *testing.T) {
	tmpDir := t.TempDir()

	blocker := filepath.Join(tmpDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	_, err := fileutils.CreateFile(filepath.Join(blocker, "out.csv"))
	assert.Error(t, err)
}
