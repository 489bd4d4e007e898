package aggregate

import "math"

// QuarterHourMinutes is the rounding granularity for billable time.
const QuarterHourMinutes = 15.0

// RoundMinutes rounds a minute total up to the next quarter hour when
// rounding is enabled. It must be applied exactly once per grouping
// unit; rounding already-rounded values inflates totals.
func RoundMinutes(minutes float64, enabled bool) float64 {
	if !enabled {
		return minutes
	}
	return math.Ceil(minutes/QuarterHourMinutes) * QuarterHourMinutes
}
