package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"trackcycle/internal/services"
)

var (
	heading   = color.New(color.Bold, color.Underline).SprintFunc()
	accent    = color.New(color.FgCyan).SprintFunc()
	good      = color.New(color.FgGreen).SprintFunc()
	warn      = color.New(color.FgYellow).SprintFunc()
	dim       = color.New(color.Faint).SprintFunc()
	barFilled = "█"
	barEmpty  = "░"
)

const displayTimeFormat = "15:04"

// formatHours renders a decimal hour value as "7.50h".
func formatHours(hours float64) string {
	return fmt.Sprintf("%.2fh", hours)
}

// formatElapsed renders a duration as "1h 23m".
func formatElapsed(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

func formatClock(t time.Time) string {
	return t.Format(displayTimeFormat)
}

func formatEnd(end *time.Time) string {
	if end == nil {
		return good("running")
	}
	return formatClock(*end)
}

// entryTable renders joined entry rows as an aligned table.
func entryTable(rows []services.EntryRow) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(heading("ID"), heading("Date"), heading("Start"), heading("End"), heading("Project"), heading("Description"), heading("Hours"))

	for _, row := range rows {
		entry := row.Entry
		name := row.ProjectName
		if entry.IsPause() {
			name = dim("Pause")
		} else if name == "" {
			name = dim(entry.ProjectID)
		}

		hours := ""
		if entry.Closed() {
			hours = formatHours(entry.Duration())
		}

		tbl.AddRow(
			dim(shortID(entry.ID)),
			entry.Start.Format("02.01.2006"),
			formatClock(entry.Start),
			formatEnd(entry.End),
			name,
			entry.Description,
			hours,
		)
	}
	return tbl
}

// shortID abbreviates a uuid for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// progressBar renders a ten-segment bar for a capped percentage.
func progressBar(percent int) string {
	filled := percent / 10
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, 10-filled)
	if percent >= 100 {
		return good(bar)
	}
	return accent(bar)
}
