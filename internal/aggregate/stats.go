package aggregate

import (
	"math"
	"time"

	"trackcycle/internal/domain"
)

// trackedDays returns one representative time per distinct calendar day
// carrying completed non-pause entries, in first-seen order.
func trackedDays(entries []domain.TimeEntry) []time.Time {
	seen := make(map[string]bool)
	var days []time.Time
	for _, entry := range entries {
		if entry.IsPause() || entry.Running() {
			continue
		}
		key := entry.Start.Format("2006-01-02")
		if !seen[key] {
			seen[key] = true
			days = append(days, DayStart(entry.Start))
		}
	}
	return days
}

// AverageDayHours is the mean tracked hours over all days that have at
// least one completed non-pause entry. Zero when nothing is tracked.
func AverageDayHours(entries []domain.TimeEntry, rounding bool) float64 {
	days := trackedDays(entries)
	if len(days) == 0 {
		return 0
	}

	var total float64
	for _, day := range days {
		total += DayHours(entries, day, rounding).RoundedHours
	}
	return total / float64(len(days))
}

// PerfectDays counts the days whose tracked total reaches the full-day
// target.
func PerfectDays(entries []domain.TimeEntry, fullDayHours float64, rounding bool) int {
	count := 0
	for _, day := range trackedDays(entries) {
		if DayHours(entries, day, rounding).RoundedHours >= fullDayHours {
			count++
		}
	}
	return count
}

// WeekComparison is the percent change of this week's tracked hours
// against last week's.
type WeekComparison struct {
	ThisWeekHours float64
	LastWeekHours float64
	DeltaPercent  int
}

// CompareWeeks sums tracked hours for the current and previous Monday
// based weeks and computes the rounded percent delta. An empty previous
// week yields 100 when the current week has hours and 0 otherwise.
func CompareWeeks(entries []domain.TimeEntry, now time.Time, rounding bool) WeekComparison {
	thisStart := WeekStart(now)
	lastStart := thisStart.AddDate(0, 0, -7)

	weekHours := func(start time.Time) float64 {
		var hours float64
		for offset := 0; offset < 7; offset++ {
			hours += DayHours(entries, start.AddDate(0, 0, offset), rounding).RoundedHours
		}
		return hours
	}

	cmp := WeekComparison{
		ThisWeekHours: weekHours(thisStart),
		LastWeekHours: weekHours(lastStart),
	}

	switch {
	case cmp.LastWeekHours == 0 && cmp.ThisWeekHours == 0:
		cmp.DeltaPercent = 0
	case cmp.LastWeekHours == 0:
		cmp.DeltaPercent = 100
	default:
		cmp.DeltaPercent = int(math.Round((cmp.ThisWeekHours - cmp.LastWeekHours) / cmp.LastWeekHours * 100))
	}
	return cmp
}

// TotalPauseHours sums the duration of completed pause entries.
func TotalPauseHours(entries []domain.TimeEntry) float64 {
	var hours float64
	for _, entry := range entries {
		if entry.IsPause() {
			hours += entry.Duration()
		}
	}
	return hours
}
