package errors

import (
	"fmt"
	"os"
)

// SnapshotNotFound creates a snapshot not found error
func SnapshotNotFound(name string) *BackupError {
	return New(ErrCodeSnapshotNotFound, fmt.Sprintf("snapshot %q not found", name)).
		WithDetail("snapshot", name)
}

// IOFailure wraps a filesystem error raised while performing op on path.
func IOFailure(op, path string, err error) *BackupError {
	backupErr := Wrap(err, ErrCodeIOFailure, fmt.Sprintf("failed to %s %s", op, path)).
		WithDetail("op", op).
		WithDetail("path", path)

	if os.IsPermission(err) {
		backupErr = backupErr.WithDetail("permission", true)
	}

	return backupErr
}

// InvalidName creates an invalid snapshot name or label error
func InvalidName(name, reason string) *BackupError {
	return New(ErrCodeInvalidInput, fmt.Sprintf("invalid snapshot name %q: %s", name, reason)).
		WithDetail("name", name)
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *BackupError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *BackupError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}
