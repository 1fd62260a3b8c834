// Package testutil holds helpers shared by env-backup tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grovetools/envbackup/pkg/paths"
	"github.com/grovetools/envbackup/snapshot"
	"github.com/stretchr/testify/require"
)

// FixedTime is the instant NewMemoryStore's clock starts at.
var FixedTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// NewMemoryStore returns a store over an in-memory backend rooted at
// /home/test/.env-backup, with a clock that starts at FixedTime and
// advances one second per call.
func NewMemoryStore(t *testing.T, env snapshot.Environ) (*snapshot.Store, *snapshot.MemoryBackend) {
	t.Helper()

	next := FixedTime
	clock := func() time.Time {
		now := next
		next = next.Add(time.Second)
		return now
	}

	backend := snapshot.NewMemoryBackend()
	opts := snapshot.DefaultOptions("/home/test/.env-backup", "/home/test")
	store, err := snapshot.NewStore(backend, env, opts, snapshot.WithClock(clock))
	require.NoError(t, err)
	return store, backend
}

// TempStoreRoot points ENV_BACKUP_DIR at a fresh temp dir for the rest of
// the test and returns it. The directory itself is not created.
func TempStoreRoot(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), ".env-backup")
	t.Setenv(paths.StoreDirEnv, root)
	return root
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
