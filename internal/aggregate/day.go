package aggregate

import (
	"time"

	"trackcycle/internal/domain"
)

// DayTotal holds the raw and rounded totals for one day. When rounding
// is disabled the rounded values equal the raw ones.
type DayTotal struct {
	RawMinutes     float64
	RawHours       float64
	RoundedMinutes float64
	RoundedHours   float64
}

// DayHours computes the tracked totals for a single day. Pauses are
// excluded. Raw minutes are summed per task group first; the rounding
// policy is then applied once per group, so three 6-minute bookings of
// the same task round to 30 minutes, not 45.
func DayHours(entries []domain.TimeEntry, day time.Time, rounding bool) DayTotal {
	var dayEntries []domain.TimeEntry
	for _, entry := range EntriesForDay(entries, day) {
		if entry.IsPause() || entry.Running() {
			continue
		}
		dayEntries = append(dayEntries, entry)
	}

	var total DayTotal
	groups := GroupByTask(dayEntries)
	for _, group := range groups {
		var groupMinutes float64
		for _, entry := range group {
			groupMinutes += entry.Minutes()
		}
		total.RawMinutes += groupMinutes
		total.RoundedMinutes += RoundMinutes(groupMinutes, rounding)
	}

	total.RawHours = total.RawMinutes / 60
	total.RoundedHours = total.RoundedMinutes / 60
	return total
}
