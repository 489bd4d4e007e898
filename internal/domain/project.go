package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a sub-classification within a project (e.g. "Meetings").
type Activity struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// Project represents a billable project in the domain model.
// Entries reference projects by id only; display names are always
// resolved by join at aggregation/export time, never cached on entries.
type Project struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	CustomerID string     `json:"customerId,omitempty"`
	Activities []Activity `json:"activities,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	MaxHours   *float64   `json:"maxHours,omitempty"`
}

// NewProject creates a new project with the given name.
func NewProject(name string) Project {
	return Project{
		ID:   uuid.NewString(),
		Name: name,
	}
}

// Ended returns true once the project's end date has passed.
// Ended projects are not sessionable: starting a timer against them is
// rejected. The check is advisory only for existing entries.
func (p Project) Ended(now time.Time) bool {
	return p.EndDate != nil && p.EndDate.Before(now)
}

// DefaultActivity returns the project's default activity, if any.
func (p Project) DefaultActivity() (Activity, bool) {
	for _, a := range p.Activities {
		if a.IsDefault {
			return a, true
		}
	}
	return Activity{}, false
}

// ActivityByID returns the activity with the given id, if present.
func (p Project) ActivityByID(id string) (Activity, bool) {
	for _, a := range p.Activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// IsValid checks if the project has valid data.
// At most one activity may be flagged as default.
func (p Project) IsValid() bool {
	if p.ID == "" || p.Name == "" {
		return false
	}
	defaults := 0
	for _, a := range p.Activities {
		if a.IsDefault {
			defaults++
		}
	}
	return defaults <= 1
}

// ProjectIndex builds an id lookup over a project slice.
func ProjectIndex(projects []Project) map[string]Project {
	index := make(map[string]Project, len(projects))
	for _, p := range projects {
		index[p.ID] = p
	}
	return index
}
