package cli

import (
	"context"
)

// CurrentCommand handles the current command
type CurrentCommand struct {
	app *App
}

// NewCurrentCommand creates a new current command handler
func NewCurrentCommand(app *App) *CurrentCommand {
	return &CurrentCommand{app: app}
}

// Execute runs the current command
func (c *CurrentCommand) Execute(ctx context.Context, args []string) error {
	status, err := c.app.businessAPI.CurrentTimer(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("show current timer", err)
	}

	if status == nil {
		c.app.println("No timer is currently running")
		return nil
	}

	label := status.ProjectName
	if label == "" {
		label = status.Entry.ProjectID
	}
	if status.Entry.Description != "" {
		label += ": " + status.Entry.Description
	}
	c.app.printf("Tracking %s (running for %s, since %s)\n",
		accent(label), formatElapsed(status.Elapsed), formatClock(status.Entry.Start))
	return nil
}
