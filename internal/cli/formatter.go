package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/phyzicist/snowballer/internal/snowball"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs the report in JSON format.
func PrintJSON(report *snowball.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the report in human-readable table format.
// Empty buckets are omitted from the per-month listing.
func PrintTable(report *snowball.Report, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nMB per month:\t\t")

	printed := 0

	for _, bucket := range report.Buckets {
		if bucket.SizeMB == 0 {
			continue
		}

		pct := 0.0
		if report.TotalMB > 0 {
			pct = 100.0 * bucket.SizeMB / report.TotalMB
		}

		fmt.Fprintf(w, "  %d)\t%.2f MB (%.1f%%)\n", bucket.MonthOffset, bucket.SizeMB, pct)
		printed++
	}

	if printed == 0 {
		fmt.Fprintln(w, "  (no files modified inside the lookback window)")
	}

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total files:\t%d\n", report.TotalFiles)
	fmt.Fprintf(w, "Skipped paths:\t%d\n", report.SkippedPaths)
	fmt.Fprintf(w, "Stat errors:\t%d\n", report.ErrorCount)
	fmt.Fprintf(w, "Files in range:\t%d (last %d months)\n", report.InRange, report.Months)
	fmt.Fprintf(w, "Size in range:\t%s (%d bytes)\n",
		humanize.Bytes(uint64(report.TotalBytes)), report.TotalBytes) //nolint:gosec // Bytes is always positive

	fmt.Fprintf(w, "\nElapsed:\t%v\n", report.Elapsed)

	return w.Flush()
}
