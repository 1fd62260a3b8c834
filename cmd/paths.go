package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/envbackup/cli"
	"github.com/grovetools/envbackup/config"
	"github.com/grovetools/envbackup/pkg/paths"
	"github.com/spf13/cobra"
)

// PathsOutput lists the directories env-backup reads and writes.
type PathsOutput struct {
	ConfigDir  string `json:"config_dir"`
	ConfigFile string `json:"config_file,omitempty"`
	StateDir   string `json:"state_dir"`
	LogDir     string `json:"log_dir"`
	StoreRoot  string `json:"store_root"`
}

func NewPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the paths used by env-backup",
		Long: `Print the paths used by env-backup as JSON.

- config_dir: configuration directory ($XDG_CONFIG_HOME/env-backup)
- config_file: the config file in use, if any
- state_dir: state directory ($XDG_STATE_HOME/env-backup)
- log_dir: daily log files
- store_root: snapshot store (ENV_BACKUP_DIR or ~/.env-backup)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			configFile := cli.GetOptions(cmd).ConfigFile
			if configFile == "" {
				configFile, _ = config.FindConfigFile(paths.ConfigDir())
			}

			output := PathsOutput{
				ConfigDir:  paths.ConfigDir(),
				ConfigFile: configFile,
				StateDir:   paths.StateDir(),
				LogDir:     paths.LogDir(),
				StoreRoot:  cfg.StoreRoot,
			}

			jsonData, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal paths to JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}
}
