// Package gaps finds untracked stretches between the bookings of a day.
package gaps

import (
	"fmt"
	"math"
	"sort"
	"time"

	"trackcycle/internal/domain"
)

// Gap is an untracked stretch between two consecutive bookings.
type Gap struct {
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
	Minutes int       `json:"minutes"`
	Label   string    `json:"label"`
}

// Detect returns the gaps of at least minGapMinutes between a day's
// completed entries. Pauses count as bookings, so a recorded pause
// never shows up as a gap. Running entries are ignored; their extent is
// unknown until stopped.
func Detect(dayEntries []domain.TimeEntry, minGapMinutes int) []Gap {
	var completed []domain.TimeEntry
	for _, entry := range dayEntries {
		if entry.Closed() {
			completed = append(completed, entry)
		}
	}

	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].Start.Before(completed[j].Start)
	})

	var gaps []Gap
	for i := 1; i < len(completed); i++ {
		prevEnd := *completed[i-1].End
		nextStart := completed[i].Start

		minutes := int(math.Round(nextStart.Sub(prevEnd).Minutes()))
		if minutes < minGapMinutes {
			continue
		}

		gaps = append(gaps, Gap{
			From:    prevEnd,
			To:      nextStart,
			Minutes: minutes,
			Label:   formatLabel(minutes),
		})
	}

	return gaps
}

// formatLabel renders a gap length as "20 min" or "1 h 5 min".
func formatLabel(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%d h %d min", minutes/60, minutes%60)
}

// Summary describes a day's completeness for gap review.
type Summary struct {
	Gaps             []Gap
	TrackedHours     float64
	Incomplete       bool
	RemainingMinutes int
}

// Summarize combines the detected gaps with the day's non-pause total
// and its shortfall against the full-day target.
func Summarize(dayEntries []domain.TimeEntry, minGapMinutes int, fullDayHours float64) Summary {
	var tracked float64
	for _, entry := range dayEntries {
		if entry.IsPause() || entry.Running() {
			continue
		}
		tracked += entry.Duration()
	}

	summary := Summary{
		Gaps:         Detect(dayEntries, minGapMinutes),
		TrackedHours: tracked,
	}

	if tracked < fullDayHours {
		summary.Incomplete = true
		summary.RemainingMinutes = int(math.Round((fullDayHours - tracked) * 60))
	}

	return summary
}

// PauseFromGap builds the pause entry that fills a gap exactly.
func PauseFromGap(gap Gap) domain.TimeEntry {
	return domain.NewPauseEntry(gap.From, gap.To)
}
