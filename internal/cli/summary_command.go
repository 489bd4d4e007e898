package cli

import (
	"context"
	"fmt"
)

// SummaryCommand shows the day overview: entries, totals and gaps.
type SummaryCommand struct {
	app *App

	// Date selects the day ("2006-01-02", "today", "yesterday").
	Date string
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{app: app}
}

// Execute runs the summary command
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	day, err := parseDayArg(c.Date, c.app.clock())
	if err != nil {
		return c.app.errorHandler.Handle("show summary", err)
	}

	overview, err := c.app.businessAPI.DayOverview(ctx, day)
	if err != nil {
		return c.app.errorHandler.Handle("show summary", err)
	}

	c.app.printf("%s\n", heading(overview.Day.Format("Monday, 02.01.2006")))

	if len(overview.Entries) == 0 {
		c.app.println("No entries for this day")
		return nil
	}
	fmt.Fprintln(c.app.out, entryTable(overview.Entries))

	c.app.printf("Tracked: %s raw, %s rounded\n",
		formatHours(overview.Total.RawHours), accent(formatHours(overview.Total.RoundedHours)))

	if n := len(overview.Summary.Gaps); n > 0 {
		c.app.printf("%s\n", warn(fmt.Sprintf("%d gap(s) detected, see 'tc gaps'", n)))
	}
	if overview.Summary.Incomplete {
		c.app.printf("%s\n", dim(fmt.Sprintf("%dm remaining to a full day", overview.Summary.RemainingMinutes)))
	}
	return nil
}
