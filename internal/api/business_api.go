package api

import (
	"context"
	"io"
	"time"

	"trackcycle/internal/config"
	"trackcycle/internal/domain"
	"trackcycle/internal/export"
	"trackcycle/internal/favorites"
	"trackcycle/internal/gaps"
	"trackcycle/internal/repository/sqlite"
	"trackcycle/internal/services"
)

// TimerStatus describes the running timer together with its resolved
// display data. A nil status means no timer is running.
type TimerStatus struct {
	Entry       domain.TimeEntry `json:"entry"`
	ProjectName string           `json:"projectName"`
	Elapsed     time.Duration    `json:"elapsed"`
}

// BusinessAPI is the single surface the CLI talks to. It composes the
// service layer into user-level workflows and keeps commands free of
// repository and mapper concerns.
type BusinessAPI interface {
	// ========== Timer Workflows ==========

	// StartTimer starts tracking time on a project, optionally backdated.
	StartTimer(ctx context.Context, projectID, description, activityID string, at *time.Time) (*domain.TimeEntry, error)

	// StopTimer closes the running entry.
	StopTimer(ctx context.Context) (*domain.TimeEntry, error)

	// CurrentTimer returns the running timer with resolved names, or nil
	// when idle.
	CurrentTimer(ctx context.Context) (*TimerStatus, error)

	// EditEntry updates the given fields of a stored entry.
	EditEntry(ctx context.Context, id string, edit services.EntryEdit) (*domain.TimeEntry, error)

	// EditActiveTimer adjusts the running entry, typically its start time.
	EditActiveTimer(ctx context.Context, edit services.EntryEdit) (*domain.TimeEntry, error)

	// DeleteEntry removes an entry and arms the undo buffer.
	DeleteEntry(ctx context.Context, id string) error

	// UndoDelete restores the most recently deleted entry while the undo
	// window is open.
	UndoDelete(ctx context.Context) (*domain.TimeEntry, error)

	// ConvertGapToPause records a detected gap as an explicit pause.
	ConvertGapToPause(ctx context.Context, gap gaps.Gap) (*domain.TimeEntry, error)

	// ========== Views ==========

	// DayOverview returns the entries, totals and gap summary for a day.
	DayOverview(ctx context.Context, day time.Time) (*services.DayOverview, error)

	// Statistics returns the full statistics snapshot.
	Statistics(ctx context.Context, now time.Time) (*services.StatsBundle, error)

	// ListEntries returns entries within the shorthand range ("30m",
	// "2h", "7d"); an empty range means everything.
	ListEntries(ctx context.Context, timeRange string) ([]services.EntryRow, error)

	// Favorites returns the favorites bar content per the current settings.
	Favorites(ctx context.Context) ([]favorites.Favorite, error)

	// Suggestions returns frequent tasks not pinned as favorites.
	Suggestions(ctx context.Context) ([]favorites.Suggestion, error)

	// ========== Export and Import ==========

	ExportCSV(ctx context.Context, w io.Writer) error
	ExportGrouped(ctx context.Context, opts export.GroupedOptions) ([]byte, error)
	ExportBackup(ctx context.Context, w io.Writer) error
	ImportBackup(ctx context.Context, data []byte) error
	AcceptCalendarEvent(ctx context.Context, projectID, title string, start, end time.Time) (*domain.TimeEntry, error)

	// ========== Settings and Catalogs ==========

	GetSettings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error

	CreateProject(ctx context.Context, name, customerID string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	EndProject(ctx context.Context, id string, endDate time.Time) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error

	CreateCustomer(ctx context.Context, name string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	container *services.ServiceContainer
	clock     func() time.Time
}

// NewBusinessAPI creates a BusinessAPI over a repository.
func NewBusinessAPI(repo sqlite.Repository, cfg *config.Config) BusinessAPI {
	return NewBusinessAPIWithContainer(services.NewServiceContainer(repo, cfg))
}

// NewBusinessAPIWithContainer wraps an existing service container.
func NewBusinessAPIWithContainer(container *services.ServiceContainer) BusinessAPI {
	return &businessAPIImpl{
		container: container,
		clock:     time.Now,
	}
}

// ========== Timer Workflows ==========

func (b *businessAPIImpl) StartTimer(ctx context.Context, projectID, description, activityID string, at *time.Time) (*domain.TimeEntry, error) {
	return b.container.Tracker.Start(ctx, projectID, description, activityID, at)
}

func (b *businessAPIImpl) StopTimer(ctx context.Context) (*domain.TimeEntry, error) {
	return b.container.Tracker.Stop(ctx)
}

func (b *businessAPIImpl) CurrentTimer(ctx context.Context) (*TimerStatus, error) {
	entry, err := b.container.Tracker.Current(ctx)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	status := &TimerStatus{
		Entry:   *entry,
		Elapsed: entry.Elapsed(b.clock()),
	}
	if entry.IsPause() {
		status.ProjectName = "Pause"
		return status, nil
	}

	projects, err := b.container.Settings.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	if project, ok := domain.ProjectIndex(projects)[entry.ProjectID]; ok {
		status.ProjectName = project.Name
	}
	return status, nil
}

func (b *businessAPIImpl) EditEntry(ctx context.Context, id string, edit services.EntryEdit) (*domain.TimeEntry, error) {
	return b.container.Tracker.EditEntry(ctx, id, edit)
}

func (b *businessAPIImpl) EditActiveTimer(ctx context.Context, edit services.EntryEdit) (*domain.TimeEntry, error) {
	return b.container.Tracker.EditActive(ctx, edit)
}

func (b *businessAPIImpl) DeleteEntry(ctx context.Context, id string) error {
	return b.container.Tracker.Delete(ctx, id)
}

func (b *businessAPIImpl) UndoDelete(ctx context.Context) (*domain.TimeEntry, error) {
	return b.container.Tracker.UndoDelete(ctx)
}

func (b *businessAPIImpl) ConvertGapToPause(ctx context.Context, gap gaps.Gap) (*domain.TimeEntry, error) {
	return b.container.Tracker.ConvertGapToPause(ctx, gap)
}

// ========== Views ==========

func (b *businessAPIImpl) DayOverview(ctx context.Context, day time.Time) (*services.DayOverview, error) {
	return b.container.Reporting.DayOverview(ctx, day)
}

func (b *businessAPIImpl) Statistics(ctx context.Context, now time.Time) (*services.StatsBundle, error) {
	return b.container.Reporting.Stats(ctx, now)
}

func (b *businessAPIImpl) ListEntries(ctx context.Context, timeRange string) ([]services.EntryRow, error) {
	if timeRange == "" {
		return b.container.Reporting.ListEntries(ctx, nil, nil)
	}

	parsed, err := ParseTimeRange(timeRange, b.clock())
	if err != nil {
		return nil, err
	}
	return b.container.Reporting.ListEntries(ctx, &parsed.Start, &parsed.End)
}

func (b *businessAPIImpl) Favorites(ctx context.Context) ([]favorites.Favorite, error) {
	return b.container.Reporting.Favorites(ctx)
}

func (b *businessAPIImpl) Suggestions(ctx context.Context) ([]favorites.Suggestion, error) {
	return b.container.Reporting.Suggestions(ctx)
}

// ========== Export and Import ==========

func (b *businessAPIImpl) ExportCSV(ctx context.Context, w io.Writer) error {
	return b.container.Export.ExportCSV(ctx, w)
}

func (b *businessAPIImpl) ExportGrouped(ctx context.Context, opts export.GroupedOptions) ([]byte, error) {
	return b.container.Export.ExportGrouped(ctx, opts)
}

func (b *businessAPIImpl) ExportBackup(ctx context.Context, w io.Writer) error {
	return b.container.Export.ExportBackup(ctx, w)
}

func (b *businessAPIImpl) ImportBackup(ctx context.Context, data []byte) error {
	return b.container.Export.ImportBackup(ctx, data)
}

func (b *businessAPIImpl) AcceptCalendarEvent(ctx context.Context, projectID, title string, start, end time.Time) (*domain.TimeEntry, error) {
	return b.container.Export.AcceptCalendarEvent(ctx, projectID, title, start, end)
}

// ========== Settings and Catalogs ==========

func (b *businessAPIImpl) GetSettings(ctx context.Context) (domain.Settings, error) {
	return b.container.Settings.GetSettings(ctx)
}

func (b *businessAPIImpl) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return b.container.Settings.SaveSettings(ctx, settings)
}

func (b *businessAPIImpl) CreateProject(ctx context.Context, name, customerID string) (*domain.Project, error) {
	return b.container.Settings.CreateProject(ctx, name, customerID)
}

func (b *businessAPIImpl) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return b.container.Settings.ListProjects(ctx)
}

func (b *businessAPIImpl) EndProject(ctx context.Context, id string, endDate time.Time) (*domain.Project, error) {
	return b.container.Settings.EndProject(ctx, id, endDate)
}

func (b *businessAPIImpl) DeleteProject(ctx context.Context, id string) error {
	return b.container.Settings.DeleteProject(ctx, id)
}

func (b *businessAPIImpl) CreateCustomer(ctx context.Context, name string) (*domain.Customer, error) {
	return b.container.Settings.CreateCustomer(ctx, name)
}

func (b *businessAPIImpl) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return b.container.Settings.ListCustomers(ctx)
}

func (b *businessAPIImpl) DeleteCustomer(ctx context.Context, id string) error {
	return b.container.Settings.DeleteCustomer(ctx, id)
}
