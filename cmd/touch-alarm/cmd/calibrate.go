package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/touch-alarm/internal/service/appliance"
)

// calibrateCmd prints the calibration records of both pads.
var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Calibrate both touch pads and print their thresholds.",
	Long: `Powers up the board, measures the untouched count of each pad and prints the
baseline, offset and resulting threshold. The pads must not be touched meanwhile.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		padA, padB, err := appliance.Calibrate(cmd.Context(), configPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "pad A: baseline %#04x, offset %#04x, threshold %#04x\n",
			padA.Baseline, padA.Offset, padA.Threshold)
		_, _ = fmt.Fprintf(out, "pad B: baseline %#04x, offset %#04x, threshold %#04x\n",
			padB.Baseline, padB.Offset, padB.Threshold)

		return nil
	},
}
