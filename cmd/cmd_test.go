package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/envbackup/errors"
	"github.com/grovetools/envbackup/logging"
	"github.com/grovetools/envbackup/snapshot"
	"github.com/grovetools/envbackup/testutil"
	"github.com/grovetools/envbackup/tui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t    *testing.T
	env  snapshot.MapEnviron
	home string
	root string
}

func newHarness(t *testing.T, env snapshot.MapEnviron) *harness {
	t.Helper()
	h := &harness{t: t, env: env, home: t.TempDir()}
	h.root = testutil.TempStoreRoot(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	origEnviron, origHome := newEnviron, userHomeDir
	newEnviron = func() snapshot.Environ { return h.env }
	userHomeDir = func() (string, error) { return h.home, nil }

	logging.Reset()
	logging.SetGlobalOutput(io.Discard)
	t.Cleanup(func() {
		newEnviron, userHomeDir = origEnviron, origHome
		logging.Reset()
		logging.SetGlobalOutput(os.Stderr)
	})
	return h
}

func (h *harness) run(args ...string) (string, string, error) {
	h.t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func (h *harness) snapshots() []snapshot.Summary {
	h.t.Helper()
	out, _, err := h.run("list", "--json")
	require.NoError(h.t, err)
	var summaries []snapshot.Summary
	require.NoError(h.t, json.Unmarshal([]byte(out), &summaries))
	return summaries
}

func TestNoSubcommandPrintsHelp(t *testing.T) {
	h := newHarness(t, snapshot.MapEnviron{})
	out, _, err := h.run()
	require.NoError(t, err)
	assert.Contains(t, out, "COMMANDS")
	assert.Contains(t, out, "restore")
}

func TestSaveListRestoreDelete(t *testing.T) {
	h := newHarness(t, snapshot.MapEnviron{"EDITOR": "vim", "HOME": "/nope"})

	_, stderr, err := h.run("save", "first")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Snapshot saved:")

	summaries := h.snapshots()
	require.Len(t, summaries, 1)
	name := summaries[0].Name
	assert.True(t, strings.HasSuffix(name, "_first"))
	assert.Equal(t, 1, summaries[0].EnvVarCount)

	out, _, err := h.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, name)
	assert.Contains(t, out, "VARS")

	h.env["EDITOR"] = "nano"
	_, stderr, err = h.run("restore", name)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Restored 1 variables")
	assert.Equal(t, "vim", h.env["EDITOR"])
	assert.Equal(t, "/nope", h.env["HOME"])

	_, stderr, err = h.run("delete", name)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Snapshot deleted:")
	assert.Empty(t, h.snapshots())
}

func TestSaveJSON(t *testing.T) {
	h := newHarness(t, snapshot.MapEnviron{"A": "1", "B": "2"})

	out, _, err := h.run("save", "--json")
	require.NoError(t, err)

	var result SaveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2, result.EnvVarCount)
	assert.Equal(t, filepath.Join(h.root, result.Name), result.Path)
}

func TestRestoreExport(t *testing.T) {
	h := newHarness(t, snapshot.MapEnviron{"GREETING": "it's here"})
	_, _, err := h.run("save")
	require.NoError(t, err)
	name := h.snapshots()[0].Name

	out, _, err := h.run("restore", "--export=bash", name)
	require.NoError(t, err)
	assert.Equal(t, "export GREETING='it'\\''s here'\n", out)

	out, _, err = h.run("restore", "--export=fish", name)
	require.NoError(t, err)
	assert.Equal(t, "set -gx GREETING 'it\\'s here'\n", out)

	_, _, err = h.run("restore", "--export=tcsh", name)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestExportShellAuto(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/fish")
	kind, err := exportShell(exportAuto)
	require.NoError(t, err)
	assert.Equal(t, snapshot.ShellFish, kind)

	t.Setenv("SHELL", "/bin/zsh")
	kind, err = exportShell(exportAuto)
	require.NoError(t, err)
	assert.Equal(t, snapshot.ShellBash, kind)
}

func TestMissingSnapshotErrors(t *testing.T) {
	h := newHarness(t, snapshot.MapEnviron{})

	for _, args := range [][]string{
		{"restore", "does-not-exist"},
		{"delete", "does-not-exist"},
		{"show", "does-not-exist"},
	} {
		_, _, err := h.run(args...)
		assert.True(t, errors.Is(err, errors.ErrCodeSnapshotNotFound), "%v", args)
	}

	_, _, err := h.run("restore", "../escape")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestDeleteForce(t *testing.T) {
	h := newHarness(t, snapshot.MapEnviron{})
	broken := filepath.Join(h.root, "broken")
	testutil.WriteFile(t, filepath.Join(broken, snapshot.StateFileName), "{trunc")

	_, _, err := h.run("delete", "broken")
	assert.True(t, errors.Is(err, errors.ErrCodeSnapshotNotFound))

	_, _, err = h.run("delete", "--force", "broken")
	require.NoError(t, err)
	_, statErr := os.Stat(broken)
	assert.True(t, os.IsNotExist(statErr))
}

func TestListEmpty(t *testing.T) {
	h := newHarness(t, snapshot.MapEnviron{})
	out, stderr, err := h.run("list")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "No snapshots found")
}

func TestShow(t *testing.T) {
	h := newHarness(t, snapshot.MapEnviron{"EDITOR": "vim"})
	testutil.WriteFile(t, filepath.Join(h.home, ".bashrc"), "export X=1\n")
	testutil.WriteFile(t, filepath.Join(h.home, ".bash_history"), "ls\npwd\n")

	_, _, err := h.run("save")
	require.NoError(t, err)
	name := h.snapshots()[0].Name

	out, _, err := h.run("show", "--vars", name)
	require.NoError(t, err)
	assert.Contains(t, out, theme.IconArchive+" "+name)
	assert.Contains(t, out, theme.IconShell+" History (bash): 2 lines")
	assert.Contains(t, out, ".bashrc")
	assert.Contains(t, out, "EDITOR: vim")

	out, _, err = h.run("show", "--json", name)
	require.NoError(t, err)
	var state snapshot.State
	require.NoError(t, json.Unmarshal([]byte(out), &state))
	assert.Equal(t, "vim", state.EnvVars["EDITOR"])
}

func TestPathsAndConfig(t *testing.T) {
	h := newHarness(t, snapshot.MapEnviron{})

	out, _, err := h.run("paths")
	require.NoError(t, err)
	var p PathsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, h.root, p.StoreRoot)
	assert.Equal(t, filepath.Join(p.StateDir, "logs"), p.LogDir)

	cfgPath := filepath.Join(t.TempDir(), "custom.toml")
	testutil.WriteFile(t, cfgPath, "exclude = [\"AWS_*\"]\n")

	out, _, err = h.run("config", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "store_root: "+h.root)
	assert.Contains(t, out, "AWS_*")

	out, _, err = h.run("config", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "store_root = ")

	_, _, err = h.run("config", "--config", filepath.Join(t.TempDir(), "missing.yml"))
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestExcludeFromConfig(t *testing.T) {
	h := newHarness(t, snapshot.MapEnviron{"AWS_SECRET_ACCESS_KEY": "x", "EDITOR": "vim"})
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	testutil.WriteFile(t, cfgPath, "exclude:\n  - AWS_*\n")

	out, _, err := h.run("save", "--json", "--config", cfgPath)
	require.NoError(t, err)
	var result SaveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1, result.EnvVarCount)
}

func TestVersion(t *testing.T) {
	h := newHarness(t, snapshot.MapEnviron{})
	out, _, err := h.run("version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version"`)
}

func TestTimingFlag(t *testing.T) {
	h := newHarness(t, snapshot.MapEnviron{"A": "1"})

	_, stderr, err := h.run("save", "--timing")
	require.NoError(t, err)
	assert.Contains(t, stderr, "timing:")
	assert.Contains(t, stderr, "snapshot.Save")
	assert.Contains(t, stderr, "capture")

	_, stderr, err = h.run("list")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "timing:")
}
