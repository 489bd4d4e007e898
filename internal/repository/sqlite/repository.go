package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"trackcycle/internal/errors"
	"trackcycle/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SearchOptions contains all possible search parameters for time entries
type SearchOptions struct {
	StartTime   *time.Time
	EndTime     *time.Time
	ProjectID   *string
	RunningOnly bool
}

// Repository defines the interface for database operations
type Repository interface {
	// Time entry operations
	CreateTimeEntry(ctx context.Context, entry *TimeEntry) error
	GetTimeEntry(ctx context.Context, id string) (*TimeEntry, error)
	ListTimeEntries(ctx context.Context) ([]*TimeEntry, error)
	SearchTimeEntries(ctx context.Context, opts SearchOptions) ([]*TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, entry *TimeEntry) error
	DeleteTimeEntry(ctx context.Context, id string) error

	// Project operations
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id string) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id string) error

	// Customer operations
	CreateCustomer(ctx context.Context, customer *Customer) error
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	ListCustomers(ctx context.Context) ([]*Customer, error)
	UpdateCustomer(ctx context.Context, customer *Customer) error
	DeleteCustomer(ctx context.Context, id string) error

	// Settings operations (stored as a single JSON document)
	GetSettings(ctx context.Context) (string, error)
	SaveSettings(ctx context.Context, settingsJSON string) error

	// ReplaceAll swaps the entire dataset in one transaction. Used by
	// backup import, which is all-or-nothing.
	ReplaceAll(ctx context.Context, entries []*TimeEntry, projects []*Project, customers []*Customer, settingsJSON string) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance and applies pending migrations
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const timeEntryColumns = "id, project_id, description, activity_id, start_time, end_time"

// CreateTimeEntry creates a new time entry
func (r *SQLiteRepository) CreateTimeEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	INSERT INTO time_entries (id, project_id, description, activity_id, start_time, end_time)
	VALUES (?, ?, ?, ?, ?, ?)`

	return Execute(ctx, r.db, query,
		entry.ID, entry.ProjectID, entry.Description, entry.ActivityID,
		FormatTimeForDB(entry.StartTime), FormatTimePtrForDB(entry.EndTime))
}

// GetTimeEntry retrieves a time entry by ID
func (r *SQLiteRepository) GetTimeEntry(ctx context.Context, id string) (*TimeEntry, error) {
	query := `
	SELECT ` + timeEntryColumns + `
	FROM time_entries
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTimeEntry, "time entry", id, id)
}

// ListTimeEntries retrieves all time entries ordered by start time
func (r *SQLiteRepository) ListTimeEntries(ctx context.Context) ([]*TimeEntry, error) {
	query := `
	SELECT ` + timeEntryColumns + `
	FROM time_entries
	ORDER BY start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanTimeEntries, "time entries")
}

// UpdateTimeEntry updates an existing time entry
func (r *SQLiteRepository) UpdateTimeEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	UPDATE time_entries
	SET project_id = ?, description = ?, activity_id = ?, start_time = ?, end_time = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "time entry", entry.ID,
		entry.ProjectID, entry.Description, entry.ActivityID,
		FormatTimeForDB(entry.StartTime), FormatTimePtrForDB(entry.EndTime), entry.ID)
}

// DeleteTimeEntry deletes a time entry by ID
func (r *SQLiteRepository) DeleteTimeEntry(ctx context.Context, id string) error {
	query := `DELETE FROM time_entries WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "time entry", id, id)
}

// SearchTimeEntries searches for time entries based on the provided options
func (r *SQLiteRepository) SearchTimeEntries(ctx context.Context, opts SearchOptions) ([]*TimeEntry, error) {
	var conditions []string
	var args []interface{}

	if opts.StartTime != nil {
		conditions = append(conditions, "start_time >= ?")
		args = append(args, FormatTimeForDB(*opts.StartTime))
	}
	if opts.EndTime != nil {
		conditions = append(conditions, "start_time <= ?")
		args = append(args, FormatTimeForDB(*opts.EndTime))
	}
	if opts.ProjectID != nil {
		conditions = append(conditions, "project_id = ?")
		args = append(args, *opts.ProjectID)
	}
	if opts.RunningOnly {
		conditions = append(conditions, "end_time IS NULL")
	}

	query := `
	SELECT ` + timeEntryColumns + `
	FROM time_entries`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY start_time ASC"

	return QueryMultiple(ctx, r.db, query, ScanTimeEntries, "time entries", args...)
}

const projectColumns = "id, name, customer_id, activities, end_date, max_hours"

// CreateProject creates a new project
func (r *SQLiteRepository) CreateProject(ctx context.Context, project *Project) error {
	query := `
	INSERT INTO projects (id, name, customer_id, activities, end_date, max_hours)
	VALUES (?, ?, ?, ?, ?, ?)`

	return Execute(ctx, r.db, query,
		project.ID, project.Name, project.CustomerID, project.Activities,
		FormatTimePtrForDB(project.EndDate), project.MaxHours)
}

// GetProject retrieves a project by ID
func (r *SQLiteRepository) GetProject(ctx context.Context, id string) (*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanProject, "project", id, id)
}

// ListProjects retrieves all projects ordered by name
func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY name ASC`
	return QueryMultiple(ctx, r.db, query, ScanProjects, "projects")
}

// UpdateProject updates an existing project
func (r *SQLiteRepository) UpdateProject(ctx context.Context, project *Project) error {
	query := `
	UPDATE projects
	SET name = ?, customer_id = ?, activities = ?, end_date = ?, max_hours = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "project", project.ID,
		project.Name, project.CustomerID, project.Activities,
		FormatTimePtrForDB(project.EndDate), project.MaxHours, project.ID)
}

// DeleteProject deletes a project by ID
func (r *SQLiteRepository) DeleteProject(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "project", id, id)
}

// CreateCustomer creates a new customer
func (r *SQLiteRepository) CreateCustomer(ctx context.Context, customer *Customer) error {
	query := `INSERT INTO customers (id, name) VALUES (?, ?)`
	return Execute(ctx, r.db, query, customer.ID, customer.Name)
}

// GetCustomer retrieves a customer by ID
func (r *SQLiteRepository) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	query := `SELECT id, name FROM customers WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanCustomer, "customer", id, id)
}

// ListCustomers retrieves all customers ordered by name
func (r *SQLiteRepository) ListCustomers(ctx context.Context) ([]*Customer, error) {
	query := `SELECT id, name FROM customers ORDER BY name ASC`
	return QueryMultiple(ctx, r.db, query, ScanCustomers, "customers")
}

// UpdateCustomer updates an existing customer
func (r *SQLiteRepository) UpdateCustomer(ctx context.Context, customer *Customer) error {
	query := `UPDATE customers SET name = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "customer", customer.ID,
		customer.Name, customer.ID)
}

// DeleteCustomer deletes a customer by ID
func (r *SQLiteRepository) DeleteCustomer(ctx context.Context, id string) error {
	query := `DELETE FROM customers WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "customer", id, id)
}

// GetSettings returns the stored settings JSON document. An empty string
// means no settings have been saved yet.
func (r *SQLiteRepository) GetSettings(ctx context.Context) (string, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM settings WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", HandleDatabaseError("get settings", err)
	}
	return data, nil
}

// SaveSettings stores the settings JSON document, replacing any previous one
func (r *SQLiteRepository) SaveSettings(ctx context.Context, settingsJSON string) error {
	query := `
	INSERT INTO settings (id, data) VALUES (1, ?)
	ON CONFLICT(id) DO UPDATE SET data = excluded.data`

	return Execute(ctx, r.db, query, settingsJSON)
}

// ReplaceAll replaces the entire dataset in a single transaction
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, entries []*TimeEntry, projects []*Project, customers []*Customer, settingsJSON string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"time_entries", "projects", "customers", "settings"} {
		if err := Execute(ctx, tx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		err := Execute(ctx, tx, `
		INSERT INTO time_entries (id, project_id, description, activity_id, start_time, end_time)
		VALUES (?, ?, ?, ?, ?, ?)`,
			entry.ID, entry.ProjectID, entry.Description, entry.ActivityID,
			FormatTimeForDB(entry.StartTime), FormatTimePtrForDB(entry.EndTime))
		if err != nil {
			return err
		}
	}

	for _, project := range projects {
		err := Execute(ctx, tx, `
		INSERT INTO projects (id, name, customer_id, activities, end_date, max_hours)
		VALUES (?, ?, ?, ?, ?, ?)`,
			project.ID, project.Name, project.CustomerID, project.Activities,
			FormatTimePtrForDB(project.EndDate), project.MaxHours)
		if err != nil {
			return err
		}
	}

	for _, customer := range customers {
		if err := Execute(ctx, tx, `INSERT INTO customers (id, name) VALUES (?, ?)`, customer.ID, customer.Name); err != nil {
			return err
		}
	}

	if settingsJSON != "" {
		if err := Execute(ctx, tx, `INSERT INTO settings (id, data) VALUES (1, ?)`, settingsJSON); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit transaction", err)
	}
	return nil
}
