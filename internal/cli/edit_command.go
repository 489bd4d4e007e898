package cli

import (
	"context"

	"trackcycle/internal/errors"
	"trackcycle/internal/services"
)

// EditCommand handles edits to stored entries and the running timer.
type EditCommand struct {
	app *App

	// Active targets the running timer instead of a stored entry.
	Active      bool
	Start       string
	End         string
	Description string
	Project     string
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	edit, err := c.buildEdit(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("edit entry", err)
	}

	if c.Active {
		entry, err := c.app.businessAPI.EditActiveTimer(ctx, edit)
		if err != nil {
			return c.app.errorHandler.Handle("edit running timer", err)
		}
		c.app.printf("Timer now runs since %s\n", formatClock(entry.Start))
		return nil
	}

	if len(args) != 1 {
		return errors.NewValidationError("usage: tc edit <entry-id> [flags], or tc edit --active", nil)
	}
	id, err := c.app.resolveEntryID(ctx, args[0])
	if err != nil {
		return c.app.errorHandler.Handle("edit entry", err)
	}

	entry, err := c.app.businessAPI.EditEntry(ctx, id, edit)
	if err != nil {
		return c.app.errorHandler.Handle("edit entry", err)
	}
	c.app.printf("Entry updated: %s-%s (%s)\n", formatClock(entry.Start), formatEnd(entry.End), entry.Description)
	return nil
}

func (c *EditCommand) buildEdit(ctx context.Context) (services.EntryEdit, error) {
	var edit services.EntryEdit
	now := c.app.clock()

	if c.Start != "" {
		start, err := parseTimePoint(c.Start, now)
		if err != nil {
			return edit, err
		}
		edit.Start = &start
	}
	if c.End != "" {
		end, err := parseTimePoint(c.End, now)
		if err != nil {
			return edit, err
		}
		edit.End = &end
	}
	if c.Description != "" {
		edit.Description = &c.Description
	}
	if c.Project != "" {
		project, err := c.app.resolveProject(ctx, c.Project)
		if err != nil {
			return edit, err
		}
		edit.ProjectID = &project.ID
	}

	if edit.Start == nil && edit.End == nil && edit.Description == nil && edit.ProjectID == nil {
		return edit, errors.NewValidationError("nothing to change, pass --start, --end, --description or --project", nil)
	}
	return edit, nil
}
