package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTimeEntry scans a single time entry from a database row
func ScanTimeEntry(scanner Scanner) (*TimeEntry, error) {
	entry := &TimeEntry{}
	var startTime string
	var endTime sql.NullString

	err := scanner.Scan(
		&entry.ID,
		&entry.ProjectID,
		&entry.Description,
		&entry.ActivityID,
		&startTime,
		&endTime,
	)
	if err != nil {
		return nil, err
	}

	entry.StartTime, err = ParseTimeFromDB(startTime)
	if err != nil {
		return nil, err
	}

	if endTime.Valid {
		end, err := ParseTimeFromDB(endTime.String)
		if err != nil {
			return nil, err
		}
		entry.EndTime = &end
	}

	return entry, nil
}

// ScanTimeEntries scans multiple time entries from database rows
func ScanTimeEntries(rows Rows) ([]*TimeEntry, error) {
	var entries []*TimeEntry
	for rows.Next() {
		entry, err := ScanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ScanProject scans a single project from a database row
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	var endDate sql.NullString
	var maxHours sql.NullFloat64

	err := scanner.Scan(
		&project.ID,
		&project.Name,
		&project.CustomerID,
		&project.Activities,
		&endDate,
		&maxHours,
	)
	if err != nil {
		return nil, err
	}

	if endDate.Valid {
		end, err := ParseTimeFromDB(endDate.String)
		if err != nil {
			return nil, err
		}
		project.EndDate = &end
	}
	if maxHours.Valid {
		project.MaxHours = &maxHours.Float64
	}

	return project, nil
}

// ScanProjects scans multiple projects from database rows
func ScanProjects(rows Rows) ([]*Project, error) {
	var projects []*Project
	for rows.Next() {
		project, err := ScanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// ScanCustomer scans a single customer from a database row
func ScanCustomer(scanner Scanner) (*Customer, error) {
	customer := &Customer{}
	err := scanner.Scan(&customer.ID, &customer.Name)
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// ScanCustomers scans multiple customers from database rows
func ScanCustomers(rows Rows) ([]*Customer, error) {
	var customers []*Customer
	for rows.Next() {
		customer, err := ScanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
