package domain

import (
	"time"

	"github.com/google/uuid"
)

// PauseProjectID is the sentinel project id marking a non-work interval.
// Pause entries close gaps like any other booking but are excluded from
// all work statistics.
const PauseProjectID = "PAUSE"

// TimeEntry represents a single time booking in the domain model.
// An entry with a nil End is "open": the timer is still running and its
// duration is undefined until Stop sets the end time.
type TimeEntry struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	Description string     `json:"description"`
	ActivityID  string     `json:"activityId,omitempty"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end"`
}

// NewTimeEntry creates a new open entry starting at the given time.
func NewTimeEntry(projectID, description, activityID string, start time.Time) TimeEntry {
	return TimeEntry{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Description: description,
		ActivityID:  activityID,
		Start:       start,
	}
}

// NewClosedEntry creates a completed entry spanning [start, end].
func NewClosedEntry(projectID, description, activityID string, start, end time.Time) TimeEntry {
	entry := NewTimeEntry(projectID, description, activityID, start)
	entry.End = &end
	return entry
}

// NewPauseEntry creates a completed pause entry spanning [start, end].
func NewPauseEntry(start, end time.Time) TimeEntry {
	return NewClosedEntry(PauseProjectID, "Pause", "", start, end)
}

// Running returns true if the entry is still open (no end time).
func (te TimeEntry) Running() bool {
	return te.End == nil
}

// Closed returns true if the entry has both start and end set.
func (te TimeEntry) Closed() bool {
	return te.End != nil
}

// IsPause returns true for non-work pause entries.
func (te TimeEntry) IsPause() bool {
	return te.ProjectID == PauseProjectID
}

// Stop closes the entry at the given end time.
func (te TimeEntry) Stop(end time.Time) TimeEntry {
	te.End = &end
	return te
}

// Duration returns the tracked time in decimal hours.
// An open entry has no duration yet and reports 0.
func (te TimeEntry) Duration() float64 {
	if te.End == nil {
		return 0
	}
	return te.End.Sub(te.Start).Hours()
}

// Minutes returns the tracked time in minutes. 0 while open.
func (te TimeEntry) Minutes() float64 {
	return te.Duration() * 60
}

// Elapsed returns the running time of an open entry at the given instant.
// This is a polling read only; it never mutates entry state.
func (te TimeEntry) Elapsed(now time.Time) time.Duration {
	if te.End != nil {
		return te.End.Sub(te.Start)
	}
	return now.Sub(te.Start)
}

// TaskKey returns the composite grouping identity for this entry.
func (te TimeEntry) TaskKey() string {
	return MakeTaskKey(te.ProjectID, te.Description)
}

// IsValid checks if the time entry has valid data.
func (te TimeEntry) IsValid() bool {
	if te.ID == "" {
		return false
	}
	if te.Start.IsZero() {
		return false
	}
	if te.End != nil && !te.End.After(te.Start) {
		return false
	}
	return true
}
