package snowball

import (
	"math"
	"time"
)

// SecondsPerMonth is the fixed month length used for windowing and
// bucketing, based on an average month of 30.42 days.
const SecondsPerMonth = 30.42 * 24 * 60 * 60

// DefaultMonths is the default lookback window length.
const DefaultMonths = 24

// TimeWindow is the trailing time span over which files are aggregated.
// End is captured once at construction and reused for every computation
// in a run so that bucket boundaries stay consistent.
type TimeWindow struct {
	Start  time.Time
	End    time.Time
	Months int
}

// NewTimeWindow returns a window of the given month count ending at now.
func NewTimeWindow(now time.Time, months int) TimeWindow {
	if months <= 0 {
		months = DefaultMonths
	}

	lookback := time.Duration(float64(months) * SecondsPerMonth * float64(time.Second))

	return TimeWindow{
		Start:  now.Add(-lookback),
		End:    now,
		Months: months,
	}
}

// Contains reports whether ts falls strictly inside the window.
// Timestamps exactly equal to either boundary are excluded.
func (w TimeWindow) Contains(ts time.Time) bool {
	return ts.After(w.Start) && ts.Before(w.End)
}

// MonthOffset converts a timestamp to its signed month distance from the
// window end: 0 is the current month, negative values lie further back.
//
// Binning is right-inclusive: bucket offset -k covers the interval
// (-k-1, -k] in month units, so a file modified exactly k months ago
// belongs to bucket -k.
func (w TimeWindow) MonthOffset(ts time.Time) int {
	months := ts.Sub(w.End).Seconds() / SecondsPerMonth

	return int(math.Ceil(months))
}
