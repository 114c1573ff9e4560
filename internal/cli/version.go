package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

//nolint:gochecknoglobals // Cobra command state
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the snowballer version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version) //nolint:forbidigo // Version output to console
	},
}
