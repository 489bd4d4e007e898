// Package metrics derives streak, focus and goal-progress figures from
// the entry log.
package metrics

import (
	"sort"
	"time"

	"trackcycle/internal/domain"
)

// Streak returns the longest run of consecutive calendar days that have
// at least one non-pause entry. Contiguity is judged on calendar dates,
// not 24-hour windows; a date missing from the recorded set breaks the
// run.
func Streak(entries []domain.TimeEntry) int {
	seen := make(map[string]time.Time)
	for _, entry := range entries {
		if entry.IsPause() {
			continue
		}
		key := entry.Start.Format("2006-01-02")
		if _, ok := seen[key]; !ok {
			y, m, d := entry.Start.Date()
			seen[key] = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		}
	}

	if len(seen) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(seen))
	for _, day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}
