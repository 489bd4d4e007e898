package metrics

import (
	"math"
	"sort"

	"trackcycle/internal/domain"
)

// Distraction gap bounds in minutes. Gaps up to the lower bound are
// normal micro-breaks; gaps of the upper bound or more (overnight) lie
// outside the work session. Both are ignored.
const (
	distractionMinMinutes = 15.0
	distractionMaxMinutes = 600.0
)

// FocusScore is the percentage of tracked time not lost to mid-session
// gaps. Completed non-pause entries are sorted by start; a gap strictly
// between 15 and 600 minutes counts as a distraction. With no tracked
// time the score is 100.
func FocusScore(entries []domain.TimeEntry) int {
	var completed []domain.TimeEntry
	for _, entry := range entries {
		if entry.IsPause() || entry.Running() || entry.Minutes() <= 0 {
			continue
		}
		completed = append(completed, entry)
	}

	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].Start.Before(completed[j].Start)
	})

	var total, distracted float64
	for i, entry := range completed {
		total += entry.Minutes()
		if i == 0 {
			continue
		}
		gap := entry.Start.Sub(*completed[i-1].End).Minutes()
		if gap > distractionMinMinutes && gap < distractionMaxMinutes {
			distracted += gap
		}
	}

	if total == 0 {
		return 100
	}

	score := math.Round(100 * (total - distracted) / total)
	return int(math.Max(0, math.Min(100, score)))
}
