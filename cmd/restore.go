package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/envbackup/errors"
	"github.com/grovetools/envbackup/snapshot"
	"github.com/grovetools/envbackup/tui/theme"
	"github.com/spf13/cobra"
)

// exportAuto picks the shell syntax from $SHELL.
const exportAuto = "auto"

func NewRestoreCmd() *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:   "restore <name>",
		Short: "Restore environment variables from a snapshot",
		Long: `Set every variable captured in the named snapshot. Variables that are not
in the snapshot are left alone.

A program cannot change the environment of the shell that started it, so
use --export and eval the output to apply a snapshot to your shell.

Examples:
  env-backup restore 2024-05-01T10-00-00_before-upgrade
  eval "$(env-backup restore --export 2024-05-01T10-00-00)"
  env-backup restore --export=fish 2024-05-01T10-00-00 | source`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			name := args[0]

			if export != "" {
				shell, err := exportShell(export)
				if err != nil {
					return err
				}
				state, err := store.Load(name)
				if err != nil {
					return err
				}
				vars := store.Restorable(state)
				fmt.Fprint(cmd.OutOrStdout(), snapshot.ExportScript(vars, shell))
				ulog(cmd).Debug(fmt.Sprintf("Exported %d variables", len(vars))).
					Field("snapshot", name).
					Field("shell", shell).
					Log(prettyContext(cmd))
				return nil
			}

			count, err := store.Restore(name)
			if err != nil {
				return err
			}
			ulog(cmd).Success(fmt.Sprintf("Restored %d variables from %s", count, name)).
				Icon(theme.IconArrow).
				Field("snapshot", name).
				Field("env_vars", count).
				PrettyOnly().
				Log(prettyContext(cmd))
			return nil
		},
	}

	cmd.Flags().StringVar(&export, "export", "", "Print shell statements instead of setting variables (bash, zsh, fish)")
	cmd.Flags().Lookup("export").NoOptDefVal = exportAuto

	return cmd
}

// exportShell resolves the --export value to a shell kind.
func exportShell(value string) (snapshot.ShellKind, error) {
	if value == exportAuto {
		if filepath.Base(os.Getenv("SHELL")) == string(snapshot.ShellFish) {
			return snapshot.ShellFish, nil
		}
		return snapshot.ShellBash, nil
	}

	kind := snapshot.ShellKind(value)
	if !snapshot.IsKnownShell(kind) {
		return "", errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("unsupported shell %q for --export", value)).
			WithDetail("shells", snapshot.KnownShells)
	}
	return kind, nil
}
