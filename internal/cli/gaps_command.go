package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gosuri/uitable"

	"trackcycle/internal/errors"
)

// GapsCommand lists untracked gaps for a day.
type GapsCommand struct {
	app *App

	// Date selects the day ("2006-01-02", "today", "yesterday").
	Date string
}

// NewGapsCommand creates a new gaps command handler
func NewGapsCommand(app *App) *GapsCommand {
	return &GapsCommand{app: app}
}

// Execute runs the gaps command
func (c *GapsCommand) Execute(ctx context.Context, args []string) error {
	day, err := parseDayArg(c.Date, c.app.clock())
	if err != nil {
		return c.app.errorHandler.Handle("detect gaps", err)
	}

	overview, err := c.app.businessAPI.DayOverview(ctx, day)
	if err != nil {
		return c.app.errorHandler.Handle("detect gaps", err)
	}

	if len(overview.Summary.Gaps) == 0 {
		c.app.println("No gaps found")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(heading("#"), heading("From"), heading("To"), heading("Length"))
	for i, gap := range overview.Summary.Gaps {
		tbl.AddRow(i+1, formatClock(gap.From), formatClock(gap.To), warn(fmt.Sprintf("%dm", gap.Minutes)))
	}
	fmt.Fprintln(c.app.out, tbl)
	c.app.printf("%s\n", dim("Run 'tc pause <#>' to record a gap as a pause."))
	return nil
}

// PauseCommand converts a detected gap into an explicit pause entry.
type PauseCommand struct {
	app *App

	// Date selects the day the gap belongs to.
	Date string
}

// NewPauseCommand creates a new pause command handler
func NewPauseCommand(app *App) *PauseCommand {
	return &PauseCommand{app: app}
}

// Execute runs the pause command
func (c *PauseCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewValidationError("usage: tc pause <gap-number> (see 'tc gaps')", nil)
	}
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 1 {
		return errors.NewValidationError("invalid gap number: "+args[0], nil)
	}

	day, err := parseDayArg(c.Date, c.app.clock())
	if err != nil {
		return c.app.errorHandler.Handle("record pause", err)
	}

	overview, err := c.app.businessAPI.DayOverview(ctx, day)
	if err != nil {
		return c.app.errorHandler.Handle("record pause", err)
	}
	if index > len(overview.Summary.Gaps) {
		return errors.NewNotFoundError("gap", args[0])
	}

	gap := overview.Summary.Gaps[index-1]
	entry, err := c.app.businessAPI.ConvertGapToPause(ctx, gap)
	if err != nil {
		return c.app.errorHandler.Handle("record pause", err)
	}

	c.app.printf("Recorded pause %s-%s (%dm)\n", formatClock(entry.Start), formatEnd(entry.End), gap.Minutes)
	return nil
}
