package cli

import (
	"context"
	"fmt"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command. An optional argument narrows the
// range: "2h", "7d", "today", "week".
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	timeRange := ""
	if len(args) > 0 {
		timeRange = args[0]
	}

	rows, err := c.app.businessAPI.ListEntries(ctx, timeRange)
	if err != nil {
		return c.app.errorHandler.Handle("list entries", err)
	}

	if len(rows) == 0 {
		c.app.println("No entries found")
		return nil
	}

	fmt.Fprintln(c.app.out, entryTable(rows))
	return nil
}
