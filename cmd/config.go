package cmd

import (
	"fmt"

	"github.com/grovetools/envbackup/cli"
	"github.com/grovetools/envbackup/config"
	"github.com/grovetools/envbackup/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func NewConfigCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, ENV_BACKUP_DIR and ${VAR}
expansion have been applied. This is useful for debugging configuration issues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			var data []byte
			switch config.Format(format) {
			case config.FormatYAML:
				data, err = yaml.Marshal(cfg)
			case config.FormatTOML:
				data, err = toml.Marshal(cfg)
			default:
				return errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("unsupported format %q (yaml, toml)", format))
			}
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to encode configuration")
			}

			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", string(config.FormatYAML), "Output format: yaml or toml")

	return cmd
}
