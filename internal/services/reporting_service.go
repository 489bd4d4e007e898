package services

import (
	"context"
	"time"

	"trackcycle/internal/aggregate"
	"trackcycle/internal/config"
	"trackcycle/internal/domain"
	"trackcycle/internal/favorites"
	"trackcycle/internal/gaps"
	"trackcycle/internal/metrics"
	"trackcycle/internal/repository/sqlite"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	repo     sqlite.Repository
	mapper   *domain.Mapper
	settings SettingsService
	cfg      *config.Config
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(repo sqlite.Repository, settings SettingsService, cfg *config.Config) ReportingService {
	return &reportingServiceImpl{
		repo:     repo,
		mapper:   domain.NewMapper(),
		settings: settings,
		cfg:      cfg,
	}
}

// snapshot loads the full dataset plus the current settings value. All
// derived views compute from this one consistent read.
func (r *reportingServiceImpl) snapshot(ctx context.Context) ([]domain.TimeEntry, []domain.Project, []domain.Customer, domain.Settings, error) {
	dbEntries, err := r.repo.ListTimeEntries(ctx)
	if err != nil {
		return nil, nil, nil, domain.Settings{}, err
	}
	dbProjects, err := r.repo.ListProjects(ctx)
	if err != nil {
		return nil, nil, nil, domain.Settings{}, err
	}
	dbCustomers, err := r.repo.ListCustomers(ctx)
	if err != nil {
		return nil, nil, nil, domain.Settings{}, err
	}
	settings, err := r.settings.GetSettings(ctx)
	if err != nil {
		return nil, nil, nil, domain.Settings{}, err
	}

	return r.mapper.TimeEntry.FromDatabaseSlice(dbEntries),
		r.mapper.Project.FromDatabaseSlice(dbProjects),
		r.mapper.Customer.FromDatabaseSlice(dbCustomers),
		settings, nil
}

func joinRows(entries []domain.TimeEntry, projects []domain.Project, customers []domain.Customer) []EntryRow {
	projectIndex := domain.ProjectIndex(projects)
	customerIndex := domain.CustomerIndex(customers)

	rows := make([]EntryRow, 0, len(entries))
	for _, entry := range entries {
		row := EntryRow{Entry: entry}
		if project, ok := projectIndex[entry.ProjectID]; ok {
			row.ProjectName = project.Name
			if customer, ok := customerIndex[project.CustomerID]; ok {
				row.CustomerName = customer.Name
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// DayOverview returns a day's entries with resolved names, its totals
// and the gap summary.
func (r *reportingServiceImpl) DayOverview(ctx context.Context, day time.Time) (*DayOverview, error) {
	entries, projects, customers, settings, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	dayEntries := aggregate.EntriesForDay(entries, day)

	return &DayOverview{
		Day:     aggregate.DayStart(day),
		Entries: joinRows(dayEntries, projects, customers),
		Total:   aggregate.DayHours(entries, day, settings.RoundToQuarter),
		Summary: gaps.Summarize(dayEntries, r.cfg.Tracking.MinGapMinutes, r.cfg.Tracking.FullDayHours),
	}, nil
}

// Stats computes the full statistics bundle at the given time.
func (r *reportingServiceImpl) Stats(ctx context.Context, now time.Time) (*StatsBundle, error) {
	entries, projects, _, settings, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	rounding := settings.RoundToQuarter
	return &StatsBundle{
		Streak:         metrics.Streak(entries),
		FocusScore:     metrics.FocusScore(entries),
		Goals:          metrics.Goals(entries, settings, now),
		Distribution:   aggregate.ProjectDistribution(entries, projects, rounding),
		WeeklySeries:   aggregate.WeeklySeries(entries, settings, now, rounding),
		AverageDay:     aggregate.AverageDayHours(entries, rounding),
		PerfectDays:    aggregate.PerfectDays(entries, r.cfg.Tracking.FullDayHours, rounding),
		WeekComparison: aggregate.CompareWeeks(entries, now, rounding),
		PauseHours:     aggregate.TotalPauseHours(entries),
	}, nil
}

// ListEntries returns entries with resolved names, optionally bounded
// by start time.
func (r *reportingServiceImpl) ListEntries(ctx context.Context, from, to *time.Time) ([]EntryRow, error) {
	dbEntries, err := r.repo.SearchTimeEntries(ctx, sqlite.SearchOptions{StartTime: from, EndTime: to})
	if err != nil {
		return nil, err
	}
	dbProjects, err := r.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	dbCustomers, err := r.repo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	return joinRows(
		r.mapper.TimeEntry.FromDatabaseSlice(dbEntries),
		r.mapper.Project.FromDatabaseSlice(dbProjects),
		r.mapper.Customer.FromDatabaseSlice(dbCustomers),
	), nil
}

// Favorites resolves the favorites list per the user's settings.
func (r *reportingServiceImpl) Favorites(ctx context.Context) ([]favorites.Favorite, error) {
	entries, projects, _, settings, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return favorites.Resolve(entries, projects, settings, r.cfg.Tracking.FavoriteLimit), nil
}

// Suggestions returns the frequently used tasks.
func (r *reportingServiceImpl) Suggestions(ctx context.Context) ([]favorites.Suggestion, error) {
	entries, projects, _, _, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return favorites.Suggestions(entries, projects, r.cfg.Tracking.SuggestionMinCount), nil
}
