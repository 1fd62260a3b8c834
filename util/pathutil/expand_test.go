package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SNAP_SUB", "snaps")

	got, err := Expand("~/.env-backup")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".env-backup"), got)

	got, err = Expand("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = Expand("/data/$SNAP_SUB")
	require.NoError(t, err)
	assert.Equal(t, "/data/snaps", got)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	got, err = Expand("relative")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "relative"), got)
}

func TestResolveHome(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"bare relative", ".bashrc", "/home/dev/.bashrc"},
		{"tilde", "~/.zshrc", "/home/dev/.zshrc"},
		{"nested", ".local/share/fish/fish_history", "/home/dev/.local/share/fish/fish_history"},
		{"absolute", "/etc/profile", "/etc/profile"},
		{"home itself", "~", "/home/dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveHome("/home/dev", tt.path))
		})
	}
}

func TestWithin(t *testing.T) {
	assert.True(t, Within("/store", "/store"))
	assert.True(t, Within("/store", "/store/2024-01-01T00-00-00"))
	assert.True(t, Within("/store", "/store/..snap"))
	assert.False(t, Within("/store", "/store/../etc"))
	assert.False(t, Within("/store", "/other"))
}
