// Package cli implements the snowballer command-line interface.
package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra command state
var (
	cfgFile      string
	flagLogLevel string

	flagRoot     string
	flagMonths   int
	flagMaxPath  int
	flagExcludes []string
	flagImage    string
	flagFormat   string
	flagNoPlot   bool

	rootCmd *cobra.Command
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // Cobra command registration
func init() {
	rootCmd = &cobra.Command{
		Use:   "snowballer [flags]",
		Short: "Estimate your monthly data creation rate",
		Long: heredoc.Doc(`
			snowballer scans a directory tree and estimates, from file
			modification times, how many megabytes of data were added per
			month over a trailing lookback window.

			The estimate is rendered as a size-weighted bar histogram and
			written to an image file ('snowball.png' by default) in the
			current working directory, overwriting any existing file.

			Files modified outside the window contribute nothing. Files
			whose path exceeds the safe length limit are skipped and
			counted. Symlinked directories are not followed.

			The estimate is coarse: modification times are biased towards
			recent activity, and deleted files are not counted at all.
		`),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/snowballer/snowballer.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.Flags().StringVarP(&flagRoot, "root", "r", "", "directory to scan (default: your Documents folder)")
	rootCmd.Flags().IntVarP(&flagMonths, "months", "m", 24, "number of months to look backward")
	rootCmd.Flags().IntVar(&flagMaxPath, "max-path", 255, "skip files whose path is longer than this")
	rootCmd.Flags().StringSliceVarP(&flagExcludes, "exclude", "e", []string{}, "regex patterns to exclude")
	rootCmd.Flags().StringVarP(&flagImage, "output", "o", "snowball.png", "histogram image path")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "table", "report format: table or json")
	rootCmd.Flags().BoolVar(&flagNoPlot, "no-plot", false, "skip rendering, only print the report")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}
