package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AttachCobraVersionCommand adds a `version` subcommand to root.
func AttachCobraVersionCommand(root *cobra.Command) {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Long:  "Print the firmware version, the commit it was built from and the build timestamp. Values are injected with ldflags at build time.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			text := Full()
			if short {
				text = Short()
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "print only the semantic version")
	root.AddCommand(cmd)
}
