package cmd

import (
	"context"
	"os"

	"github.com/grovetools/envbackup/cli"
	"github.com/grovetools/envbackup/config"
	"github.com/grovetools/envbackup/errors"
	"github.com/grovetools/envbackup/logging"
	"github.com/grovetools/envbackup/snapshot"
	"github.com/spf13/cobra"
)

const componentName = "env-backup"

// Hooks replaced in tests.
var (
	newBackend  = func() snapshot.Backend { return snapshot.NewOSBackend() }
	newEnviron  = func() snapshot.Environ { return snapshot.NewProcessEnviron() }
	userHomeDir = os.UserHomeDir
)

// openStore loads configuration and builds the snapshot store it describes.
func openStore(cmd *cobra.Command) (*snapshot.Store, *config.Config, error) {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	home, err := userHomeDir()
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to determine home directory")
	}

	logger := cli.GetLogger(cmd, "store")
	store, err := snapshot.NewStore(newBackend(), newEnviron(), cfg.SnapshotOptions(home), snapshot.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	logger.WithField("root", store.Root()).Debug("Opened snapshot store")
	return store, cfg, nil
}

// ulog returns the unified logger for user-facing messages.
func ulog(cmd *cobra.Command) *logging.UnifiedLogger {
	return logging.NewUnifiedLoggerWithEntry(componentName, cli.GetLogger(cmd, "cli"))
}

// prettyContext routes pretty output to the command's stderr so stdout
// carries only data.
func prettyContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithWriter(ctx, cmd.ErrOrStderr())
}
