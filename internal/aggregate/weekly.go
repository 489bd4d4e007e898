package aggregate

import (
	"time"

	"trackcycle/internal/domain"
)

// German short weekday labels, indexed by time.Weekday.
var weekdayLabels = [...]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}

// DayBucket is one day of the trailing-week series.
type DayBucket struct {
	Day       time.Time
	Label     string
	Hours     float64
	IsWorkday bool
}

// WeeklySeries builds the trailing seven calendar days ending with
// today. Non-workdays stay in the series with their flag cleared so the
// chart keeps a fixed width.
func WeeklySeries(entries []domain.TimeEntry, settings domain.Settings, now time.Time, rounding bool) []DayBucket {
	series := make([]DayBucket, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := DayStart(now.AddDate(0, 0, -offset))
		total := DayHours(entries, day, rounding)
		series = append(series, DayBucket{
			Day:       day,
			Label:     weekdayLabels[day.Weekday()],
			Hours:     total.RoundedHours,
			IsWorkday: settings.IsWorkday(day),
		})
	}
	return series
}
