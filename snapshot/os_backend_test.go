package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/envbackup/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiskStore(t *testing.T, env Environ) (*Store, string) {
	t.Helper()
	home := t.TempDir()
	root := filepath.Join(home, ".env-backup")
	store, err := NewStore(NewOSBackend(), env, DefaultOptions(root, home), WithClock(stepClock(baseTime)))
	require.NoError(t, err)
	return store, home
}

func TestOSBackendLifecycle(t *testing.T) {
	store, home := newDiskStore(t, MapEnviron{"EDITOR": "vim", "HOME": "/ignored"})
	require.NoError(t, os.WriteFile(filepath.Join(home, ".bashrc"), []byte("alias ll='ls -l'\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".bash_history"), []byte("ls\n#1700000000\npwd\n"), 0o600))

	snap, err := store.Save("disk")
	require.NoError(t, err)

	info, err := os.Stat(snap.Path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := os.ReadFile(filepath.Join(snap.Path, StateFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"EDITOR": "vim"`)
	assert.NotContains(t, string(data), "/ignored")
	_, err = os.Stat(filepath.Join(snap.Path, StateFileName+tmpSuffix))
	assert.True(t, os.IsNotExist(err))

	summaries, err := store.List()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, snap.Name, summaries[0].Name)
	assert.Equal(t, 1, summaries[0].EnvVarCount)
	assert.Equal(t, info.Size(), summaries[0].Size)

	state, err := store.Load(snap.Name)
	require.NoError(t, err)
	assert.Equal(t, []string{"ls", "pwd"}, state.ShellHistory[ShellBash])
	assert.Equal(t, "alias ll='ls -l'\n", state.ShellConfig[".bashrc"])

	require.NoError(t, store.Delete(snap.Name))
	_, err = os.Stat(snap.Path)
	assert.True(t, os.IsNotExist(err))

	err = store.Delete(snap.Name)
	assert.True(t, errors.Is(err, errors.ErrCodeSnapshotNotFound))
}

func TestOSBackendSkipsUnreadableConfig(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	store, home := newDiskStore(t, MapEnviron{})
	locked := filepath.Join(home, ".zshrc")
	require.NoError(t, os.WriteFile(locked, []byte("setopt autocd\n"), 0o000))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".profile"), []byte("umask 022\n"), 0o644))

	snap, err := store.Save("")
	require.NoError(t, err)
	assert.NotContains(t, snap.State.ShellConfig, ".zshrc")
	assert.Equal(t, "umask 022\n", snap.State.ShellConfig[".profile"])
}

func TestOSBackendStrayFilesIgnored(t *testing.T) {
	store, home := newDiskStore(t, MapEnviron{})
	root := filepath.Join(home, ".env-backup")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty-dir"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o600))

	summaries, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
