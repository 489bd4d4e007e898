package services

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"trackcycle/internal/domain"
	"trackcycle/internal/errors"
	"trackcycle/internal/export"
	"trackcycle/internal/logging"
	"trackcycle/internal/repository/sqlite"
	"trackcycle/internal/validation"
)

// exportServiceImpl implements the ExportService interface
type exportServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	settings  SettingsService
	validator *validation.TimeEntryValidator
}

// NewExportService creates a new ExportService instance
func NewExportService(repo sqlite.Repository, settings SettingsService) ExportService {
	return &exportServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		settings:  settings,
		validator: validation.NewTimeEntryValidator(),
	}
}

func (e *exportServiceImpl) snapshot(ctx context.Context) ([]domain.TimeEntry, []domain.Project, []domain.Customer, domain.Settings, error) {
	dbEntries, err := e.repo.ListTimeEntries(ctx)
	if err != nil {
		return nil, nil, nil, domain.Settings{}, err
	}
	dbProjects, err := e.repo.ListProjects(ctx)
	if err != nil {
		return nil, nil, nil, domain.Settings{}, err
	}
	dbCustomers, err := e.repo.ListCustomers(ctx)
	if err != nil {
		return nil, nil, nil, domain.Settings{}, err
	}
	settings, err := e.settings.GetSettings(ctx)
	if err != nil {
		return nil, nil, nil, domain.Settings{}, err
	}

	return e.mapper.TimeEntry.FromDatabaseSlice(dbEntries),
		e.mapper.Project.FromDatabaseSlice(dbProjects),
		e.mapper.Customer.FromDatabaseSlice(dbCustomers),
		settings, nil
}

// ExportCSV writes the flat per-entry CSV.
func (e *exportServiceImpl) ExportCSV(ctx context.Context, w io.Writer) error {
	entries, projects, customers, _, err := e.snapshot(ctx)
	if err != nil {
		return err
	}
	return export.WriteCSV(w, entries, projects, customers)
}

// ExportGrouped renders the grouped timesheet JSON.
func (e *exportServiceImpl) ExportGrouped(ctx context.Context, opts export.GroupedOptions) ([]byte, error) {
	entries, projects, customers, settings, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return export.GroupedJSON(entries, projects, customers, settings, opts)
}

// ExportBackup writes the full dataset.
func (e *exportServiceImpl) ExportBackup(ctx context.Context, w io.Writer) error {
	entries, projects, customers, settings, err := e.snapshot(ctx)
	if err != nil {
		return err
	}
	return export.WriteBackup(w, export.Backup{
		Entries:   entries,
		Projects:  projects,
		Customers: customers,
		Settings:  settings,
	})
}

// ImportBackup validates the payload in full and replaces the dataset
// in one transaction. A failed validation writes nothing.
func (e *exportServiceImpl) ImportBackup(ctx context.Context, data []byte) error {
	backup, err := export.ParseBackup(data)
	if err != nil {
		return err
	}

	dbEntries := make([]*sqlite.TimeEntry, 0, len(backup.Entries))
	for _, entry := range backup.Entries {
		dbEntry := e.mapper.TimeEntry.ToDatabase(entry)
		dbEntries = append(dbEntries, &dbEntry)
	}
	dbProjects := make([]*sqlite.Project, 0, len(backup.Projects))
	for _, project := range backup.Projects {
		dbProject := e.mapper.Project.ToDatabase(project)
		dbProjects = append(dbProjects, &dbProject)
	}
	dbCustomers := make([]*sqlite.Customer, 0, len(backup.Customers))
	for _, customer := range backup.Customers {
		dbCustomer := e.mapper.Customer.ToDatabase(customer)
		dbCustomers = append(dbCustomers, &dbCustomer)
	}

	settingsJSON, err := json.Marshal(backup.Settings)
	if err != nil {
		return errors.NewMalformedImportError("settings cannot be serialized", err)
	}

	if err := e.repo.ReplaceAll(ctx, dbEntries, dbProjects, dbCustomers, string(settingsJSON)); err != nil {
		return err
	}

	logging.Debugf("imported backup: %d entries, %d projects, %d customers\n",
		len(backup.Entries), len(backup.Projects), len(backup.Customers))
	return nil
}

// AcceptCalendarEvent turns an externally fetched calendar event into a
// closed entry through the normal creation path.
func (e *exportServiceImpl) AcceptCalendarEvent(ctx context.Context, projectID, title string, start, end time.Time) (*domain.TimeEntry, error) {
	if err := e.validator.ValidateForStart(projectID, title, start); err != nil {
		return nil, errors.NewValidationError("invalid calendar event", err)
	}
	if err := e.validator.ValidateInterval(start, &end); err != nil {
		return nil, errors.NewInvalidIntervalError(start, end)
	}
	if _, err := e.repo.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	entry := domain.NewClosedEntry(projectID, title, "", start, end)
	dbEntry := e.mapper.TimeEntry.ToDatabase(entry)
	if err := e.repo.CreateTimeEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}
	return &entry, nil
}
