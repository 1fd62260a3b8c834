// Package paths provides XDG-compliant path resolution for env-backup.
//
// Resolution order for config/state:
// 1. XDG env vars → $XDG_*_HOME/env-backup
// 2. Platform defaults → ~/.config/env-backup, ~/.local/state/env-backup
//
// Snapshots live outside XDG in ~/.env-backup unless ENV_BACKUP_DIR is set.
package paths

import (
	"os"
	"path/filepath"
)

const appName = "env-backup"

// StoreDirEnv overrides the snapshot store root.
const StoreDirEnv = "ENV_BACKUP_DIR"

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getStateHome returns the base state home directory.
func getStateHome() string {
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the env-backup configuration directory.
// Used for config.yml / config.toml.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// StateDir returns the env-backup state directory.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// LogDir returns the directory holding daily log files.
func LogDir() string {
	state := StateDir()
	if state == "" {
		return ""
	}
	return filepath.Join(state, "logs")
}

// DefaultStoreRoot returns the snapshot store root.
// Resolution order:
// 1. ENV_BACKUP_DIR env var
// 2. ~/.env-backup
func DefaultStoreRoot() string {
	if dir := os.Getenv(StoreDirEnv); dir != "" {
		return dir
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".env-backup")
	}
	return ""
}
