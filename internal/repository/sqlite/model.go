package sqlite

import "time"

// TimeEntry represents a single time booking row.
// EndTime is NULL while the entry's timer is still running.
type TimeEntry struct {
	ID          string
	ProjectID   string
	Description string
	ActivityID  string
	StartTime   time.Time
	EndTime     *time.Time
}

// Project represents a project row. Activities are stored as a JSON
// array in a single column.
type Project struct {
	ID         string
	Name       string
	CustomerID string
	Activities string
	EndDate    *time.Time
	MaxHours   *float64
}

// Customer represents a customer row.
type Customer struct {
	ID   string
	Name string
}
