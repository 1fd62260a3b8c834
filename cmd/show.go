package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/grovetools/envbackup/cli"
	"github.com/grovetools/envbackup/logging"
	"github.com/grovetools/envbackup/snapshot"
	"github.com/grovetools/envbackup/tui/theme"
	"github.com/spf13/cobra"
)

func NewShowCmd() *cobra.Command {
	var showVars bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show what a snapshot contains",
		Long: `Print a summary of the named snapshot: when it was captured, how many
variables it holds, history lines per shell and captured config files.

Examples:
  env-backup show 2024-05-01T10-00-00
  env-backup show --vars 2024-05-01T10-00-00
  env-backup show --json 2024-05-01T10-00-00`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}

			state, err := store.Load(args[0])
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(state)
			}

			fmt.Fprintln(cmd.OutOrStdout(), theme.RenderHeader(theme.IconArchive+" "+args[0]))
			printState(logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout()), args[0], state, showVars)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showVars, "vars", false, "Also list variable names and values")

	return cmd
}

func printState(p *logging.PrettyLogger, name string, state *snapshot.State, showVars bool) {
	p.Field("Snapshot", name)
	p.Field("Captured", fmt.Sprintf("%s (%s)", state.CapturedAt.Format(time.RFC3339), humanize.Time(state.CapturedAt)))
	p.Field("Variables", len(state.EnvVars))

	for _, kind := range snapshot.KnownShells {
		p.Field(fmt.Sprintf("%s History (%s)", theme.IconShell, kind), fmt.Sprintf("%d lines", len(state.ShellHistory[kind])))
	}

	configs := sortedKeys(state.ShellConfig)
	if len(configs) == 0 {
		p.Field("Config files", "none")
	} else {
		p.Field("Config files", len(configs))
		for _, f := range configs {
			p.Path("  "+f, humanize.Bytes(uint64(len(state.ShellConfig[f]))))
		}
	}

	if showVars && len(state.EnvVars) > 0 {
		p.Divider()
		for _, k := range sortedKeys(state.EnvVars) {
			p.Field(k, state.EnvVars[k])
		}
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
