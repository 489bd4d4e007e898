package services

import (
	"context"
	"io"
	"time"

	"trackcycle/internal/aggregate"
	"trackcycle/internal/domain"
	"trackcycle/internal/export"
	"trackcycle/internal/favorites"
	"trackcycle/internal/gaps"
	"trackcycle/internal/metrics"
)

// EntryEdit carries the fields of an entry edit; nil fields stay
// untouched.
type EntryEdit struct {
	ProjectID   *string
	Description *string
	ActivityID  *string
	Start       *time.Time
	End         *time.Time
}

// EntryRow is an entry joined with its resolved display names.
type EntryRow struct {
	Entry        domain.TimeEntry `json:"entry"`
	ProjectName  string           `json:"projectName"`
	CustomerName string           `json:"customerName"`
}

// DayOverview bundles everything a day view needs.
type DayOverview struct {
	Day     time.Time          `json:"day"`
	Entries []EntryRow         `json:"entries"`
	Total   aggregate.DayTotal `json:"total"`
	Summary gaps.Summary       `json:"summary"`
}

// StatsBundle is the full statistics snapshot.
type StatsBundle struct {
	Streak         int                      `json:"streak"`
	FocusScore     int                      `json:"focusScore"`
	Goals          metrics.GoalProgress     `json:"goals"`
	Distribution   []aggregate.ProjectHours `json:"distribution"`
	WeeklySeries   []aggregate.DayBucket    `json:"weeklySeries"`
	AverageDay     float64                  `json:"averageDayHours"`
	PerfectDays    int                      `json:"perfectDays"`
	WeekComparison aggregate.WeekComparison `json:"weekComparison"`
	PauseHours     float64                  `json:"pauseHours"`
}

// TrackerService governs the entry lifecycle: the single-timer state
// machine, edits, pause conversion and delete/undo.
type TrackerService interface {
	Start(ctx context.Context, projectID, description, activityID string, startTime *time.Time) (*domain.TimeEntry, error)
	Stop(ctx context.Context) (*domain.TimeEntry, error)
	Current(ctx context.Context) (*domain.TimeEntry, error)
	EditEntry(ctx context.Context, id string, edit EntryEdit) (*domain.TimeEntry, error)
	EditActive(ctx context.Context, edit EntryEdit) (*domain.TimeEntry, error)
	ConvertGapToPause(ctx context.Context, gap gaps.Gap) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id string) error
	UndoDelete(ctx context.Context) (*domain.TimeEntry, error)
}

// ReportingService derives read-only views from the entry log.
type ReportingService interface {
	DayOverview(ctx context.Context, day time.Time) (*DayOverview, error)
	Stats(ctx context.Context, now time.Time) (*StatsBundle, error)
	ListEntries(ctx context.Context, from, to *time.Time) ([]EntryRow, error)
	Favorites(ctx context.Context) ([]favorites.Favorite, error)
	Suggestions(ctx context.Context) ([]favorites.Suggestion, error)
}

// ExportService renders and exchanges whole datasets.
type ExportService interface {
	ExportCSV(ctx context.Context, w io.Writer) error
	ExportGrouped(ctx context.Context, opts export.GroupedOptions) ([]byte, error)
	ExportBackup(ctx context.Context, w io.Writer) error
	ImportBackup(ctx context.Context, data []byte) error
	AcceptCalendarEvent(ctx context.Context, projectID, title string, start, end time.Time) (*domain.TimeEntry, error)
}

// SettingsService owns settings plus project and customer management.
type SettingsService interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error

	CreateProject(ctx context.Context, name, customerID string) (*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	EndProject(ctx context.Context, id string, endDate time.Time) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error

	CreateCustomer(ctx context.Context, name string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Tracker   TrackerService
	Reporting ReportingService
	Export    ExportService
	Settings  SettingsService
}
