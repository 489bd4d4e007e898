package cli

import (
	"context"

	"trackcycle/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewValidationError("usage: tc delete <entry-id>", nil)
	}

	id, err := c.app.resolveEntryID(ctx, args[0])
	if err != nil {
		return c.app.errorHandler.Handle("delete entry", err)
	}

	if err := c.app.businessAPI.DeleteEntry(ctx, id); err != nil {
		return c.app.errorHandler.Handle("delete entry", err)
	}

	window := c.app.config.Tracking.UndoWindow
	c.app.printf("Entry deleted. %s\n", dim("Run 'tc undo' within "+window.String()+" to restore it."))
	return nil
}

// UndoCommand restores the most recently deleted entry.
type UndoCommand struct {
	app *App
}

// NewUndoCommand creates a new undo command handler
func NewUndoCommand(app *App) *UndoCommand {
	return &UndoCommand{app: app}
}

// Execute runs the undo command
func (c *UndoCommand) Execute(ctx context.Context, args []string) error {
	entry, err := c.app.businessAPI.UndoDelete(ctx)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNothingToUndo) {
			c.app.println("Nothing to undo")
			return nil
		}
		return c.app.errorHandler.Handle("undo delete", err)
	}

	c.app.printf("Restored entry from %s (%s)\n", formatClock(entry.Start), entry.Description)
	return nil
}
