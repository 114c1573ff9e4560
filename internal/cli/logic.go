package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/phyzicist/snowballer/internal/config"
	"github.com/phyzicist/snowballer/internal/logger"
	"github.com/phyzicist/snowballer/internal/render"
	"github.com/phyzicist/snowballer/internal/snowball"
)

// mergeConfig loads the config file and folds its values into the flag
// variables. Flags set explicitly on the command line win.
func mergeConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if !flags.Changed("root") && cfg.Scan.Root != "" {
		flagRoot = cfg.Scan.Root
	}

	if !flags.Changed("months") {
		flagMonths = cfg.Scan.Months
	}

	if !flags.Changed("max-path") {
		flagMaxPath = cfg.Scan.MaxPathLen
	}

	if !flags.Changed("exclude") && len(cfg.Scan.Excludes) > 0 {
		flagExcludes = cfg.Scan.Excludes
	}

	if !flags.Changed("output") {
		flagImage = cfg.Output.Image
	}

	if !flags.Changed("format") {
		flagFormat = cfg.Output.Format
	}

	if !cmd.PersistentFlags().Changed("log-level") && cfg.Logging.Level != "" {
		flagLogLevel = cfg.Logging.Level
	}

	if flagRoot == "" {
		flagRoot = config.DefaultRoot()
	}

	return nil
}

func run(cmd *cobra.Command, args []string) error {
	if err := mergeConfig(cmd); err != nil {
		return err
	}

	if flagMonths < 1 {
		return fmt.Errorf("months must be at least 1")
	}

	logger.Init(flagLogLevel)
	log := logger.Get()

	options := snowball.Options{
		Root:       flagRoot,
		Months:     flagMonths,
		MaxPathLen: flagMaxPath,
		Excludes:   flagExcludes,
	}

	enableProgress := strings.ToLower(flagFormat) != "json" &&
		isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.Bytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	log.Info().
		Str("root", options.Root).
		Int("months", options.Months).
		Msg("gathering recursive list of all files")

	report, err := snowball.Run(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	log.Info().
		Int64("total", report.TotalFiles).
		Int64("skipped", report.SkippedPaths).
		Int64("errors", report.ErrorCount).
		Int64("in_range", report.InRange).
		Msg("scan complete")

	if report.SkippedPaths > 0 {
		log.Warn().
			Int64("count", report.SkippedPaths).
			Int("max_path", flagMaxPath).
			Msg("files skipped because their path is too long")
	}

	switch strings.ToLower(flagFormat) {
	case "json":
		err = PrintJSON(report, os.Stdout)
	case "table":
		err = PrintTable(report, os.Stdout)
	default:
		err = fmt.Errorf("unknown report format: %s", flagFormat)
	}

	if err != nil {
		return err
	}

	if flagNoPlot {
		return nil
	}

	if err := render.Histogram(report, render.Options{Path: flagImage}); err != nil {
		return err
	}

	log.Info().Str("path", flagImage).Msg("histogram written")

	return nil
}
