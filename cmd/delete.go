package cmd

import (
	"fmt"

	"github.com/grovetools/envbackup/tui/theme"
	"github.com/spf13/cobra"
)

func NewDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a snapshot",
		Long: `Remove the named snapshot and everything in it.

A snapshot whose state document is missing or corrupt is reported as not
found; use --force to remove its directory anyway.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			name := args[0]

			if force {
				err = store.ForceDelete(name)
			} else {
				err = store.Delete(name)
			}
			if err != nil {
				return err
			}

			ulog(cmd).Success(fmt.Sprintf("Snapshot deleted: %s", name)).
				Field("snapshot", name).
				Icon(theme.IconTrash).
				PrettyOnly().
				Log(prettyContext(cmd))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove the snapshot directory even if its state document is invalid")

	return cmd
}
