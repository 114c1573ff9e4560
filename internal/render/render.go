// Package render draws the monthly data-creation histogram.
package render

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/phyzicist/snowballer/internal/snowball"
)

// Default canvas dimensions.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 4.5 * vg.Inch
)

// barColor matches the familiar default plotting blue.
//
//nolint:gochecknoglobals // Style constant
var barColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// Options configure the output image.
type Options struct {
	// Path is the output file. The image format is inferred from the
	// extension. An existing file is overwritten.
	Path string
	// Width and Height are the canvas dimensions (0 = defaults).
	Width  vg.Length
	Height vg.Length
}

// Histogram renders the report's per-month totals as a bar chart and
// writes it to opt.Path. The x-axis is the month offset (0 = now,
// oldest on the left), the y-axis is MB per month.
func Histogram(report *snowball.Report, opt Options) error {
	if opt.Width <= 0 {
		opt.Width = DefaultWidth
	}

	if opt.Height <= 0 {
		opt.Height = DefaultHeight
	}

	values := make(plotter.Values, len(report.Buckets))
	labels := make([]string, len(report.Buckets))

	for i, bucket := range report.Buckets {
		values[i] = bucket.SizeMB
		labels[i] = strconv.Itoa(bucket.MonthOffset)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Est. Data Creation Rate In '%s'", report.Root)
	p.X.Label.Text = "Month # (0 = now)"
	p.Y.Label.Text = "MB per month"
	p.Y.Min = 0

	barWidth := opt.Width / vg.Length(len(report.Buckets)+2)

	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return fmt.Errorf("building bar chart: %w", err)
	}

	bars.LineStyle.Width = vg.Length(0)
	bars.Color = barColor

	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(opt.Width, opt.Height, opt.Path); err != nil {
		return fmt.Errorf("writing histogram to %q: %w", opt.Path, err)
	}

	return nil
}
