package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/touch-alarm/internal/config"
	"github.com/oshokin/touch-alarm/internal/service/appliance"
	"github.com/oshokin/touch-alarm/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// headless runs without the front panel.
	headless bool
	// duration stops the appliance after the given time.
	duration time.Duration

	// rootCmd runs the appliance on the simulated board.
	rootCmd = &cobra.Command{
		Use:   "touch-alarm",
		Short: "Run the capacitive touch alarm appliance.",
		Long: `Runs the alarm appliance on a simulated board.

Two touch pads are scanned every timeslice. Key A arms the alarm, key D disarms it
and key C shows the memory checksum. Touching a pad while armed raises the alarm
and starts the tone. Tilting the board shows a tamper warning.

The front panel shows the display and the LEDs and takes keys: a, d, c, 1 and 2 to
touch the pads, t to tilt the board and q to quit. Use --headless to run without it.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &appliance.Options{
				ConfigPath: configPath,
				Headless:   headless,
				Duration:   duration,
			}

			return appliance.Run(ctx, options)
		},
	}
)

// Execute runs the touch-alarm CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().BoolVar(&headless, "headless", false, "run without the front panel, logging to stdout")
	rootCmd.Flags().DurationVarP(&duration, "duration", "d", 0, "stop after the given time (0 runs until interrupted)")

	rootCmd.AddCommand(calibrateCmd, checksumCmd, configCmd)
}
