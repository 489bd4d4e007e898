package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"trackcycle/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with all subcommands.
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "tc",
		Short: "A command-line time tracking application",
		Long: `TrackCycle (tc) tracks your working time per project, detects gaps
in your day and keeps you honest about your weekly and monthly goals.

EXAMPLES:
  tc start website "Code review"        # Start the timer on a project
  tc stop                               # Stop the running timer
  tc current                            # Show what is being tracked
  tc summary                            # Today's entries, totals and gaps
  tc gaps                               # Untracked gaps of the day
  tc pause 1                            # Record gap #1 as a pause
  tc stats                              # Streak, focus score, goals
  tc list 2h                            # Entries of the last two hours
  tc export csv > entries.csv           # CSV export
  tc export backup                      # Full JSON backup
  tc import TrackCycle_Backup_*.json    # Restore a backup

CONFIGURATION:
  TC_DB                                 Database file path
  TC_DB_DIR, TC_DB_FILENAME             Database location parts
  TC_TRACKING_MIN_GAP_MINUTES           Gap detection threshold (default: 15)
  TC_TRACKING_FULL_DAY_HOURS            Full working day (default: 8)
  TC_DEBUG                              Enable debug logging

TIME FORMATS:
  Ranges: 30m, 2h, 7d, 1w, today, week
  Points: 15:04 or "2006-01-02 15:04"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.applyFlagOverrides(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()
	return root
}

// addGlobalFlags adds flags that override configuration for one run.
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()
	flags.Int("min-gap-minutes", 0, "gap detection threshold (overrides TC_TRACKING_MIN_GAP_MINUTES)")
	flags.Float64("full-day-hours", 0, "full working day in hours (overrides TC_TRACKING_FULL_DAY_HOURS)")
	flags.Bool("verbose", false, "enable verbose output (overrides TC_DEBUG)")
}

func (r *RootCommand) applyFlagOverrides(cmd *cobra.Command) error {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("min-gap-minutes") {
		v, err := flags.GetInt("min-gap-minutes")
		if err != nil {
			return err
		}
		overrides.MinGapMinutes = &v
	}
	if flags.Changed("full-day-hours") {
		v, err := flags.GetFloat64("full-day-hours")
		if err != nil {
			return err
		}
		overrides.FullDayHours = &v
	}
	if flags.Changed("verbose") {
		v, err := flags.GetBool("verbose")
		if err != nil {
			return err
		}
		overrides.Verbose = &v
		if v {
			os.Setenv("TC_DEBUG", "1")
		}
	}

	return r.app.config.ApplyOverrides(overrides)
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command exposes the underlying cobra command, mainly for tests.
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

func (r *RootCommand) addSubcommands() {
	startHandler := NewStartCommand(r.app)
	startCmd := &cobra.Command{
		Use:   "start <project> [description]",
		Short: "Start the timer on a project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return startHandler.Execute(cmd.Context(), args)
		},
	}
	startCmd.Flags().StringVar(&startHandler.At, "at", "", "backdated start time (15:04)")
	startCmd.Flags().StringVar(&startHandler.Activity, "activity", "", "activity id within the project")

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewStopCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	currentCmd := &cobra.Command{
		Use:   "current",
		Short: "Show the running timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewCurrentCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	editHandler := NewEditCommand(r.app)
	editCmd := &cobra.Command{
		Use:   "edit [entry-id]",
		Short: "Edit a stored entry or the running timer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editHandler.Execute(cmd.Context(), args)
		},
	}
	editCmd.Flags().BoolVar(&editHandler.Active, "active", false, "edit the running timer")
	editCmd.Flags().StringVar(&editHandler.Start, "start", "", "new start time (15:04)")
	editCmd.Flags().StringVar(&editHandler.End, "end", "", "new end time (15:04)")
	editCmd.Flags().StringVar(&editHandler.Description, "description", "", "new description")
	editCmd.Flags().StringVar(&editHandler.Project, "project", "", "new project")

	deleteCmd := &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete an entry (undoable for a few seconds)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDeleteCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	undoCmd := &cobra.Command{
		Use:   "undo",
		Short: "Restore the most recently deleted entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewUndoCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	gapsHandler := NewGapsCommand(r.app)
	gapsCmd := &cobra.Command{
		Use:   "gaps",
		Short: "List untracked gaps of a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gapsHandler.Execute(cmd.Context(), args)
		},
	}
	gapsCmd.Flags().StringVar(&gapsHandler.Date, "date", "", "day to inspect (2006-01-02)")

	pauseHandler := NewPauseCommand(r.app)
	pauseCmd := &cobra.Command{
		Use:   "pause <gap-number>",
		Short: "Record a detected gap as a pause",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return pauseHandler.Execute(cmd.Context(), args)
		},
	}
	pauseCmd.Flags().StringVar(&pauseHandler.Date, "date", "", "day the gap belongs to (2006-01-02)")

	listCmd := &cobra.Command{
		Use:   "list [range]",
		Short: "List entries, optionally within a range",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewListCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	summaryHandler := NewSummaryCommand(r.app)
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a day's entries, totals and gaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return summaryHandler.Execute(cmd.Context(), args)
		},
	}
	summaryCmd.Flags().StringVar(&summaryHandler.Date, "date", "", "day to show (2006-01-02)")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show streak, focus score, goals and charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewStatsCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	favoritesCmd := &cobra.Command{
		Use:   "favorites",
		Short: "Show the favorites bar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewFavoritesCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	suggestCmd := &cobra.Command{
		Use:   "suggest",
		Short: "Show frequent tasks worth pinning",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewSuggestCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	r.cmd.AddCommand(
		startCmd, stopCmd, currentCmd, editCmd, deleteCmd, undoCmd,
		gapsCmd, pauseCmd, listCmd, summaryCmd, statsCmd,
		favoritesCmd, suggestCmd,
		r.projectsCommand(), r.customersCommand(),
		r.exportCommand(), r.importCommand(), r.calendarCommand(),
	)
}

func (r *RootCommand) projectsCommand() *cobra.Command {
	handler := NewProjectsCommand(r.app)

	projectsCmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.List(cmd.Context(), args)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.Add(cmd.Context(), args)
		},
	}
	addCmd.Flags().StringVar(&handler.Customer, "customer", "", "customer id or name")

	endCmd := &cobra.Command{
		Use:   "end <project> [date]",
		Short: "End a project as of a date",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.End(cmd.Context(), args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <project>",
		Short: "Delete a project, keeping its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.Delete(cmd.Context(), args)
		},
	}

	projectsCmd.AddCommand(addCmd, endCmd, deleteCmd)
	return projectsCmd
}

func (r *RootCommand) customersCommand() *cobra.Command {
	handler := NewCustomersCommand(r.app)

	customersCmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.List(cmd.Context(), args)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a customer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.Add(cmd.Context(), args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.Delete(cmd.Context(), args)
		},
	}

	customersCmd.AddCommand(addCmd, deleteCmd)
	return customersCmd
}

func (r *RootCommand) exportCommand() *cobra.Command {
	handler := NewExportCommand(r.app)

	exportCmd := &cobra.Command{
		Use:   "export <csv|grouped|backup>",
		Short: "Export entries as CSV, grouped JSON or a full backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.Execute(cmd.Context(), args)
		},
	}
	exportCmd.Flags().StringVar(&handler.File, "file", "", "output file, '-' for stdout")
	exportCmd.Flags().StringVar(&handler.Date, "date", "", "day for grouped exports (2006-01-02)")
	exportCmd.Flags().BoolVar(&handler.Week, "week", false, "group the trailing week")
	exportCmd.Flags().BoolVar(&handler.All, "all", false, "group all entries")
	return exportCmd
}

func (r *RootCommand) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <backup-file>",
		Short: "Restore a backup, replacing all data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewImportCommand(r.app).Execute(cmd.Context(), args)
		},
	}
}

func (r *RootCommand) calendarCommand() *cobra.Command {
	handler := NewCalendarCommand(r.app)

	calendarCmd := &cobra.Command{
		Use:   "calendar <project> <title>",
		Short: "Record a calendar event as a closed entry",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.Execute(cmd.Context(), args)
		},
	}
	calendarCmd.Flags().StringVar(&handler.Start, "start", "", "event start (15:04)")
	calendarCmd.Flags().StringVar(&handler.End, "end", "", "event end (15:04)")
	return calendarCmd
}

// ExecuteContext runs the root command with the given context.
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}
