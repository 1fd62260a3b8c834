package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/envbackup/cli"
	"github.com/grovetools/envbackup/snapshot"
	"github.com/grovetools/envbackup/tui/theme"
	"github.com/spf13/cobra"
)

// SaveOutput is the --json result of save.
type SaveOutput struct {
	snapshot.Summary
	Path string `json:"path"`
}

func NewSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [label]",
		Short: "Save the current environment as a new snapshot",
		Long: `Capture environment variables, shell history and shell config files
into a new snapshot named after the current UTC time and the optional label.

Session variables such as HOME, PATH and TERM are never captured.

Examples:
  env-backup save
  env-backup save before-upgrade`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}

			label := ""
			if len(args) == 1 {
				label = args[0]
			}

			snap, err := store.Save(label)
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				out := SaveOutput{
					Summary: snapshot.Summary{
						Name:        snap.Name,
						CapturedAt:  snap.State.CapturedAt,
						EnvVarCount: len(snap.State.EnvVars),
					},
					Path: snap.Path,
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			ulog(cmd).Success(fmt.Sprintf("Snapshot saved: %s", snap.Name)).
				Field("snapshot", snap.Name).
				Field("env_vars", len(snap.State.EnvVars)).
				Icon(theme.IconSave).
				PrettyOnly().
				Log(prettyContext(cmd))
			return nil
		},
	}
}
