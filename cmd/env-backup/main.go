package main

import (
	"os"

	"github.com/grovetools/envbackup/cli"
	"github.com/grovetools/envbackup/cmd"
	"github.com/grovetools/envbackup/tui"
)

func main() {
	tui.InitializeTUI()

	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		cli.NewErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}
