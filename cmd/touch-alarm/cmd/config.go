package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/touch-alarm/internal/config"
)

var (
	// configCmd groups configuration helpers.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the appliance configuration file.",
	}

	// configInitCmd writes the default configuration.
	configInitCmd = &cobra.Command{
		Use:          "init [path]",
		Short:        "Write the default configuration file.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if len(args) > 0 {
				path = args[0]
			}

			if err := config.Save(path, config.Default()); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "configuration written to %s\n", path)

			return nil
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	configCmd.AddCommand(configInitCmd)
}
