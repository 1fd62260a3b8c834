package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/grovetools/envbackup/cli"
	"github.com/grovetools/envbackup/tui/components/table"
	"github.com/grovetools/envbackup/tui/theme"
	"github.com/spf13/cobra"
)

func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved snapshots, most recent first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}

			summaries, err := store.List()
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}

			if len(summaries) == 0 {
				ulog(cmd).Status("No snapshots found").
					PrettyOnly().
					Log(prettyContext(cmd))
				return nil
			}

			opts := table.DefaultOptions()
			opts.RightAligned = []int{2, 3}
			tbl := table.NewStyledTableWithOptions(opts).
				Headers("NAME", "CAPTURED", "VARS", "SIZE")
			for _, s := range summaries {
				tbl.Row(
					s.Name,
					theme.DefaultTheme.Muted.Render(humanize.Time(s.CapturedAt)),
					strconv.Itoa(s.EnvVarCount),
					humanize.Bytes(uint64(s.Size)),
				)
			}

			fmt.Fprintln(cmd.OutOrStdout(), theme.RenderHeader("Environment Backups"))
			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
			return nil
		},
	}
}
