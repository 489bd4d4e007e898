package cli

import (
	"context"
	"strings"
	"time"

	"trackcycle/internal/errors"
)

// StartCommand handles the start command
type StartCommand struct {
	app *App

	// At holds the optional backdated start ("15:04" or
	// "2006-01-02 15:04").
	At string
	// Activity holds the optional activity id within the project.
	Activity string
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{app: app}
}

// Execute runs the start command
func (c *StartCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewValidationError("usage: tc start <project> [description]", nil)
	}

	project, err := c.app.resolveProject(ctx, args[0])
	if err != nil {
		return c.app.errorHandler.Handle("start timer", err)
	}
	description := strings.Join(args[1:], " ")

	var at *time.Time
	if c.At != "" {
		parsed, err := parseTimePoint(c.At, c.app.clock())
		if err != nil {
			return c.app.errorHandler.Handle("start timer", err)
		}
		at = &parsed
	}

	entry, err := c.app.businessAPI.StartTimer(ctx, project.ID, description, c.Activity, at)
	if err != nil {
		return c.app.errorHandler.Handle("start timer", err)
	}

	if description != "" {
		c.app.printf("Started %s: %s (at %s)\n", project.Name, description, formatClock(entry.Start))
	} else {
		c.app.printf("Started %s (at %s)\n", project.Name, formatClock(entry.Start))
	}
	return nil
}
