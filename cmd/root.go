package cmd

import (
	"github.com/grovetools/envbackup/cli"
	"github.com/grovetools/envbackup/pkg/profiling"
	"github.com/grovetools/envbackup/version"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the env-backup command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		componentName,
		"Save and restore environment variables, shell history and shell config",
	)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	cli.SetVersionTemplate(rootCmd, version.GetInfo())

	profiler := profiling.NewCobraProfiler()
	profiler.AddFlags(rootCmd)
	rootCmd.PersistentPreRunE = profiler.PreRun
	rootCmd.PersistentPostRun = profiler.PostRun

	rootCmd.AddCommand(NewSaveCmd())
	rootCmd.AddCommand(NewRestoreCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewDeleteCmd())
	rootCmd.AddCommand(NewShowCmd())
	rootCmd.AddCommand(NewPathsCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(cli.NewVersionCommand(componentName))

	cli.ApplyStyledHelpRecursive(rootCmd)
	return rootCmd
}
