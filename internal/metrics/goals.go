package metrics

import (
	"math"
	"time"

	"trackcycle/internal/aggregate"
	"trackcycle/internal/domain"
)

// GoalProgress carries the weekly and monthly target figures, each with
// the raw and the rounding-policy totals side by side.
type GoalProgress struct {
	WeeklyGoalHours      float64
	WeeklyRawHours       float64
	WeeklyRoundedHours   float64
	WeeklyRawPercent     int
	WeeklyRoundedPercent int

	MonthlyGoalHours      float64
	MonthlyRawHours       float64
	MonthlyRoundedHours   float64
	MonthlyRawPercent     int
	MonthlyRoundedPercent int
}

// Goals computes the progress against the weekly target and the derived
// monthly target. The monthly goal scales the weekly target by the day
// count of the configured target month. Rounded totals apply the
// quarter-hour policy once per task group per day; percentages are
// capped at 100.
func Goals(entries []domain.TimeEntry, settings domain.Settings, now time.Time) GoalProgress {
	progress := GoalProgress{
		WeeklyGoalHours: settings.WeeklyHours,
	}

	targetMonth := settings.TargetMonthOf(now)
	daysInMonth := time.Date(now.Year(), targetMonth+1, 0, 0, 0, 0, 0, now.Location()).Day()
	progress.MonthlyGoalHours = math.Round(settings.WeeklyHours * float64(daysInMonth) / 7)

	weekStart := aggregate.WeekStart(now)
	for offset := 0; offset < 7; offset++ {
		total := aggregate.DayHours(entries, weekStart.AddDate(0, 0, offset), settings.RoundToQuarter)
		progress.WeeklyRawHours += total.RawHours
		progress.WeeklyRoundedHours += total.RoundedHours
	}

	monthFrom, monthTo := aggregate.MonthWindow(now)
	for day := monthFrom; day.Before(monthTo); day = day.AddDate(0, 0, 1) {
		total := aggregate.DayHours(entries, day, settings.RoundToQuarter)
		progress.MonthlyRawHours += total.RawHours
		progress.MonthlyRoundedHours += total.RoundedHours
	}

	progress.WeeklyRawPercent = goalPercent(progress.WeeklyRawHours, progress.WeeklyGoalHours)
	progress.WeeklyRoundedPercent = goalPercent(progress.WeeklyRoundedHours, progress.WeeklyGoalHours)
	progress.MonthlyRawPercent = goalPercent(progress.MonthlyRawHours, progress.MonthlyGoalHours)
	progress.MonthlyRoundedPercent = goalPercent(progress.MonthlyRoundedHours, progress.MonthlyGoalHours)

	return progress
}

func goalPercent(tracked, goal float64) int {
	if goal <= 0 {
		return 0
	}
	percent := math.Round(100 * tracked / goal)
	return int(math.Min(100, percent))
}
