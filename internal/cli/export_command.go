package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"trackcycle/internal/errors"
	"trackcycle/internal/export"
)

// ExportCommand writes the dataset in one of the export formats.
type ExportCommand struct {
	app *App

	// File writes to a path instead of stdout. For grouped exports an
	// empty value still writes a file with the generated name.
	File string
	// Date narrows a grouped day export; Week switches to the trailing
	// week.
	Date string
	Week bool
	All  bool
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app}
}

// Execute runs the export command: args[0] selects csv, grouped or
// backup.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewValidationError("usage: tc export <csv|grouped|backup>", nil)
	}

	switch args[0] {
	case "csv":
		return c.exportCSV(ctx)
	case "grouped":
		return c.exportGrouped(ctx)
	case "backup":
		return c.exportBackup(ctx)
	default:
		return errors.NewValidationError("unknown export format: "+args[0], nil)
	}
}

func (c *ExportCommand) exportCSV(ctx context.Context) error {
	w, done, err := c.openTarget("")
	if err != nil {
		return c.app.errorHandler.Handle("export csv", err)
	}
	defer done()

	if err := c.app.businessAPI.ExportCSV(ctx, w); err != nil {
		return c.app.errorHandler.Handle("export csv", err)
	}
	return nil
}

func (c *ExportCommand) exportGrouped(ctx context.Context) error {
	now := c.app.clock()
	opts := export.GroupedOptions{Mode: export.ModeDay, Day: now}

	switch {
	case c.All:
		opts.Mode = export.ModeAll
	case c.Week:
		opts.Mode = export.ModeWeek
		opts.To = now
		opts.From = now.AddDate(0, 0, -6)
	default:
		day, err := parseDayArg(c.Date, now)
		if err != nil {
			return c.app.errorHandler.Handle("export grouped", err)
		}
		opts.Day = day
	}

	data, err := c.app.businessAPI.ExportGrouped(ctx, opts)
	if err != nil {
		return c.app.errorHandler.Handle("export grouped", err)
	}

	filename := c.File
	if filename == "" {
		filename = export.GroupedFilename(now)
	}
	if filename == "-" {
		fmt.Fprintln(c.app.out, string(data))
		return nil
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return c.app.errorHandler.Handle("export grouped", err)
	}
	c.app.printf("Wrote %s\n", filename)
	return nil
}

func (c *ExportCommand) exportBackup(ctx context.Context) error {
	filename := c.File
	if filename == "" {
		filename = export.BackupFilename(c.app.clock())
	}

	w, done, err := c.openTarget(filename)
	if err != nil {
		return c.app.errorHandler.Handle("export backup", err)
	}
	defer done()

	if err := c.app.businessAPI.ExportBackup(ctx, w); err != nil {
		return c.app.errorHandler.Handle("export backup", err)
	}
	if filename != "-" {
		c.app.printf("Wrote %s\n", filename)
	}
	return nil
}

// openTarget returns the command output for "" or "-", a created file
// otherwise.
func (c *ExportCommand) openTarget(fallback string) (w io.Writer, done func(), err error) {
	filename := c.File
	if filename == "" {
		filename = fallback
	}
	if filename == "" || filename == "-" {
		return c.app.out, func() {}, nil
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// ImportCommand restores a backup file, replacing the whole dataset.
type ImportCommand struct {
	app *App
}

// NewImportCommand creates a new import command handler
func NewImportCommand(app *App) *ImportCommand {
	return &ImportCommand{app: app}
}

// Execute runs the import command
func (c *ImportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewValidationError("usage: tc import <backup-file>", nil)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return c.app.errorHandler.Handle("import backup", err)
	}

	if err := c.app.businessAPI.ImportBackup(ctx, data); err != nil {
		return c.app.errorHandler.Handle("import backup", err)
	}
	c.app.println("Backup imported")
	return nil
}
