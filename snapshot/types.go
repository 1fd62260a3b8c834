// Package snapshot captures environment variables, shell history and shell
// config files into named snapshots, and lists, restores and deletes them.
//
// A store is a directory on disk:
//
//	<store-root>/<snapshot-name>/state.json
//
// All filesystem access goes through a Backend and all environment access
// through an Environ, so the lifecycle can run against in-memory fakes.
package snapshot

import (
	"path/filepath"
	"time"
)

// StateFileName is the single document inside each snapshot directory.
const StateFileName = "state.json"

// NameLayout formats the timestamp part of a snapshot name (UTC, seconds).
const NameLayout = "2006-01-02T15-04-05"

// ShellKind identifies a shell whose history is captured.
type ShellKind string

const (
	ShellBash ShellKind = "bash"
	ShellZsh  ShellKind = "zsh"
	ShellFish ShellKind = "fish"
)

// KnownShells is the fixed set of shell kinds, in display order.
var KnownShells = []ShellKind{ShellBash, ShellZsh, ShellFish}

// IsKnownShell reports whether kind is one of KnownShells.
func IsKnownShell(kind ShellKind) bool {
	for _, k := range KnownShells {
		if k == kind {
			return true
		}
	}
	return false
}

// DefaultExcludedVars are session and terminal specific variables that are
// never captured and never restored.
var DefaultExcludedVars = []string{
	"HOME",
	"USER",
	"LOGNAME",
	"PATH",
	"PWD",
	"OLDPWD",
	"SHELL",
	"SHLVL",
	"TERM",
	"TERM_PROGRAM",
	"TERM_PROGRAM_VERSION",
	"TERM_SESSION_ID",
	"SSH_AUTH_SOCK",
	"DISPLAY",
	"WINDOWID",
	"TMUX",
	"TMUX_PANE",
	"XDG_SESSION_ID",
	"LANG",
	"LC_ALL",
	"TZ",
	"_",
}

// DefaultHistoryFiles maps each shell kind to its history file, relative to
// the home directory.
var DefaultHistoryFiles = map[ShellKind]string{
	ShellBash: ".bash_history",
	ShellZsh:  ".zsh_history",
	ShellFish: filepath.Join(".local", "share", "fish", "fish_history"),
}

// DefaultConfigFiles are the shell config files captured verbatim, relative
// to the home directory. The relative name is the key in State.ShellConfig.
var DefaultConfigFiles = []string{
	".bashrc",
	".bash_profile",
	".zshrc",
	".zprofile",
	".profile",
	filepath.Join(".config", "fish", "config.fish"),
}

// State is the persisted state document.
type State struct {
	EnvVars      map[string]string      `json:"envVars" jsonschema:"required"`
	ShellHistory map[ShellKind][]string `json:"shellHistory"`
	ShellConfig  map[string]string      `json:"shellConfig"`
	CapturedAt   time.Time              `json:"capturedAt" jsonschema:"required"`
}

// Snapshot is a saved state together with its name and location.
type Snapshot struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	State *State `json:"state"`
}

// Summary describes a stored snapshot for listing.
type Summary struct {
	Name        string    `json:"name"`
	CapturedAt  time.Time `json:"capturedAt"`
	EnvVarCount int       `json:"envVars"`
	// Size is the snapshot directory entry's own size as reported by the
	// filesystem, not the total of its contents.
	Size int64 `json:"size"`
}

// Options configures what a Store captures and where it keeps snapshots.
type Options struct {
	// StoreRoot is the directory holding snapshot directories.
	StoreRoot string
	// Home is the directory relative config file names resolve against.
	Home string
	// ExcludedVars are exact variable names never captured or restored.
	ExcludedVars []string
	// ExcludePatterns are additional glob patterns (e.g. "AWS_*").
	ExcludePatterns []string
	// HistoryFiles maps shell kind to an absolute history file path.
	HistoryFiles map[ShellKind]string
	// ConfigFiles are config file names relative to Home (or absolute).
	ConfigFiles []string
}

// DefaultOptions returns options using the built-in denylist, history files
// and config files.
func DefaultOptions(storeRoot, home string) Options {
	history := make(map[ShellKind]string, len(DefaultHistoryFiles))
	for kind, rel := range DefaultHistoryFiles {
		history[kind] = filepath.Join(home, rel)
	}

	return Options{
		StoreRoot:    storeRoot,
		Home:         home,
		ExcludedVars: append([]string(nil), DefaultExcludedVars...),
		HistoryFiles: history,
		ConfigFiles:  append([]string(nil), DefaultConfigFiles...),
	}
}

// FormatName builds a snapshot name from a capture instant and an already
// sanitized label.
func FormatName(t time.Time, label string) string {
	name := t.UTC().Format(NameLayout)
	if label != "" {
		name += "_" + label
	}
	return name
}
