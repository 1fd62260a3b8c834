package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/envbackup/pkg/paths"
	"github.com/grovetools/envbackup/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryStore(t *testing.T) {
	store, backend := NewMemoryStore(t, snapshot.MapEnviron{"EDITOR": "vim"})

	snap, err := store.Save("")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T10-00-00", snap.Name)
	assert.True(t, backend.Exists(filepath.Join(store.Root(), snap.Name, snapshot.StateFileName)))
}

func TestTempStoreRoot(t *testing.T) {
	root := TempStoreRoot(t)
	assert.Equal(t, root, os.Getenv(paths.StoreDirEnv))
	assert.Equal(t, ".env-backup", filepath.Base(root))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", ".bashrc")
	WriteFile(t, path, "alias g=git\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "alias g=git\n", string(data))
}
