package cli

import (
	"context"
	"strings"

	"trackcycle/internal/errors"
)

// CalendarCommand records a calendar event as a closed entry.
type CalendarCommand struct {
	app *App

	Start string
	End   string
}

// NewCalendarCommand creates a new calendar command handler
func NewCalendarCommand(app *App) *CalendarCommand {
	return &CalendarCommand{app: app}
}

// Execute runs the calendar command
func (c *CalendarCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 || c.Start == "" || c.End == "" {
		return errors.NewValidationError("usage: tc calendar <project> <title> --start 15:04 --end 15:04", nil)
	}

	project, err := c.app.resolveProject(ctx, args[0])
	if err != nil {
		return c.app.errorHandler.Handle("accept calendar event", err)
	}
	title := strings.Join(args[1:], " ")

	now := c.app.clock()
	start, err := parseTimePoint(c.Start, now)
	if err != nil {
		return c.app.errorHandler.Handle("accept calendar event", err)
	}
	end, err := parseTimePoint(c.End, now)
	if err != nil {
		return c.app.errorHandler.Handle("accept calendar event", err)
	}

	entry, err := c.app.businessAPI.AcceptCalendarEvent(ctx, project.ID, title, start, end)
	if err != nil {
		return c.app.errorHandler.Handle("accept calendar event", err)
	}

	c.app.printf("Recorded %s: %s (%s-%s)\n",
		project.Name, entry.Description, formatClock(entry.Start), formatEnd(entry.End))
	return nil
}
