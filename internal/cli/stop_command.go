package cli

import (
	"context"
)

// StopCommand handles the stop command
type StopCommand struct {
	app *App
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{app: app}
}

// Execute runs the stop command
func (c *StopCommand) Execute(ctx context.Context, args []string) error {
	entry, err := c.app.businessAPI.StopTimer(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("stop timer", err)
	}

	c.app.printf("Stopped at %s (%s tracked)\n", formatClock(*entry.End), formatHours(entry.Duration()))
	return nil
}
