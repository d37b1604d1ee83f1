package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/touch-alarm/internal/service/appliance"
)

// checksumCmd prints the memory checksum of the configured range.
var checksumCmd = &cobra.Command{
	Use:          "checksum",
	Short:        "Print the 16-bit checksum of the configured flash range.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sum, err := appliance.Checksum(configPath)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%04X\n", sum)

		return nil
	},
}
