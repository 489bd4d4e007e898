package cli

import (
	"context"
	"io"
	"time"

	"trackcycle/internal/api"
	"trackcycle/internal/domain"
	"trackcycle/internal/export"
	"trackcycle/internal/favorites"
	"trackcycle/internal/gaps"
	"trackcycle/internal/services"
)

// mockBusinessAPI is a hand-rolled mock with overridable function
// fields. Unset funcs return zero values.
type mockBusinessAPI struct {
	StartTimerFunc        func(ctx context.Context, projectID, description, activityID string, at *time.Time) (*domain.TimeEntry, error)
	StopTimerFunc         func(ctx context.Context) (*domain.TimeEntry, error)
	CurrentTimerFunc      func(ctx context.Context) (*api.TimerStatus, error)
	EditEntryFunc         func(ctx context.Context, id string, edit services.EntryEdit) (*domain.TimeEntry, error)
	EditActiveTimerFunc   func(ctx context.Context, edit services.EntryEdit) (*domain.TimeEntry, error)
	DeleteEntryFunc       func(ctx context.Context, id string) error
	UndoDeleteFunc        func(ctx context.Context) (*domain.TimeEntry, error)
	ConvertGapToPauseFunc func(ctx context.Context, gap gaps.Gap) (*domain.TimeEntry, error)
	DayOverviewFunc       func(ctx context.Context, day time.Time) (*services.DayOverview, error)
	StatisticsFunc        func(ctx context.Context, now time.Time) (*services.StatsBundle, error)
	ListEntriesFunc       func(ctx context.Context, timeRange string) ([]services.EntryRow, error)
	FavoritesFunc         func(ctx context.Context) ([]favorites.Favorite, error)
	SuggestionsFunc       func(ctx context.Context) ([]favorites.Suggestion, error)
	ListProjectsFunc      func(ctx context.Context) ([]domain.Project, error)
	ListCustomersFunc     func(ctx context.Context) ([]domain.Customer, error)
}

func (m *mockBusinessAPI) StartTimer(ctx context.Context, projectID, description, activityID string, at *time.Time) (*domain.TimeEntry, error) {
	if m.StartTimerFunc != nil {
		return m.StartTimerFunc(ctx, projectID, description, activityID, at)
	}
	return nil, nil
}

func (m *mockBusinessAPI) StopTimer(ctx context.Context) (*domain.TimeEntry, error) {
	if m.StopTimerFunc != nil {
		return m.StopTimerFunc(ctx)
	}
	return nil, nil
}

func (m *mockBusinessAPI) CurrentTimer(ctx context.Context) (*api.TimerStatus, error) {
	if m.CurrentTimerFunc != nil {
		return m.CurrentTimerFunc(ctx)
	}
	return nil, nil
}

func (m *mockBusinessAPI) EditEntry(ctx context.Context, id string, edit services.EntryEdit) (*domain.TimeEntry, error) {
	if m.EditEntryFunc != nil {
		return m.EditEntryFunc(ctx, id, edit)
	}
	return nil, nil
}

func (m *mockBusinessAPI) EditActiveTimer(ctx context.Context, edit services.EntryEdit) (*domain.TimeEntry, error) {
	if m.EditActiveTimerFunc != nil {
		return m.EditActiveTimerFunc(ctx, edit)
	}
	return nil, nil
}

func (m *mockBusinessAPI) DeleteEntry(ctx context.Context, id string) error {
	if m.DeleteEntryFunc != nil {
		return m.DeleteEntryFunc(ctx, id)
	}
	return nil
}

func (m *mockBusinessAPI) UndoDelete(ctx context.Context) (*domain.TimeEntry, error) {
	if m.UndoDeleteFunc != nil {
		return m.UndoDeleteFunc(ctx)
	}
	return nil, nil
}

func (m *mockBusinessAPI) ConvertGapToPause(ctx context.Context, gap gaps.Gap) (*domain.TimeEntry, error) {
	if m.ConvertGapToPauseFunc != nil {
		return m.ConvertGapToPauseFunc(ctx, gap)
	}
	return nil, nil
}

func (m *mockBusinessAPI) DayOverview(ctx context.Context, day time.Time) (*services.DayOverview, error) {
	if m.DayOverviewFunc != nil {
		return m.DayOverviewFunc(ctx, day)
	}
	return &services.DayOverview{Day: day}, nil
}

func (m *mockBusinessAPI) Statistics(ctx context.Context, now time.Time) (*services.StatsBundle, error) {
	if m.StatisticsFunc != nil {
		return m.StatisticsFunc(ctx, now)
	}
	return &services.StatsBundle{}, nil
}

func (m *mockBusinessAPI) ListEntries(ctx context.Context, timeRange string) ([]services.EntryRow, error) {
	if m.ListEntriesFunc != nil {
		return m.ListEntriesFunc(ctx, timeRange)
	}
	return nil, nil
}

func (m *mockBusinessAPI) Favorites(ctx context.Context) ([]favorites.Favorite, error) {
	if m.FavoritesFunc != nil {
		return m.FavoritesFunc(ctx)
	}
	return nil, nil
}

func (m *mockBusinessAPI) Suggestions(ctx context.Context) ([]favorites.Suggestion, error) {
	if m.SuggestionsFunc != nil {
		return m.SuggestionsFunc(ctx)
	}
	return nil, nil
}

func (m *mockBusinessAPI) ExportCSV(ctx context.Context, w io.Writer) error { return nil }

func (m *mockBusinessAPI) ExportGrouped(ctx context.Context, opts export.GroupedOptions) ([]byte, error) {
	return []byte("[]"), nil
}

func (m *mockBusinessAPI) ExportBackup(ctx context.Context, w io.Writer) error { return nil }

func (m *mockBusinessAPI) ImportBackup(ctx context.Context, data []byte) error { return nil }

func (m *mockBusinessAPI) AcceptCalendarEvent(ctx context.Context, projectID, title string, start, end time.Time) (*domain.TimeEntry, error) {
	return nil, nil
}

func (m *mockBusinessAPI) GetSettings(ctx context.Context) (domain.Settings, error) {
	return domain.DefaultSettings(), nil
}

func (m *mockBusinessAPI) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return nil
}

func (m *mockBusinessAPI) CreateProject(ctx context.Context, name, customerID string) (*domain.Project, error) {
	project := domain.NewProject(name)
	project.CustomerID = customerID
	return &project, nil
}

func (m *mockBusinessAPI) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if m.ListProjectsFunc != nil {
		return m.ListProjectsFunc(ctx)
	}
	return nil, nil
}

func (m *mockBusinessAPI) EndProject(ctx context.Context, id string, endDate time.Time) (*domain.Project, error) {
	return nil, nil
}

func (m *mockBusinessAPI) DeleteProject(ctx context.Context, id string) error { return nil }

func (m *mockBusinessAPI) CreateCustomer(ctx context.Context, name string) (*domain.Customer, error) {
	customer := domain.NewCustomer(name)
	return &customer, nil
}

func (m *mockBusinessAPI) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	if m.ListCustomersFunc != nil {
		return m.ListCustomersFunc(ctx)
	}
	return nil, nil
}

func (m *mockBusinessAPI) DeleteCustomer(ctx context.Context, id string) error { return nil }
