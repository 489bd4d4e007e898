package aggregate

import (
	"time"

	"trackcycle/internal/domain"
)

// GroupByTask groups entries by their task key (project plus
// description). Map iteration order is undefined; use TaskKeys for a
// stable first-seen ordering.
func GroupByTask(entries []domain.TimeEntry) map[string][]domain.TimeEntry {
	groups := make(map[string][]domain.TimeEntry)
	for _, entry := range entries {
		key := entry.TaskKey()
		groups[key] = append(groups[key], entry)
	}
	return groups
}

// TaskKeys returns the task keys of entries in first-seen order.
func TaskKeys(entries []domain.TimeEntry) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, entry := range entries {
		key := entry.TaskKey()
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// EntriesForDay returns the entries whose start falls on the given day,
// preserving order.
func EntriesForDay(entries []domain.TimeEntry, day time.Time) []domain.TimeEntry {
	var result []domain.TimeEntry
	for _, entry := range entries {
		if SameDay(entry.Start, day) {
			result = append(result, entry)
		}
	}
	return result
}
