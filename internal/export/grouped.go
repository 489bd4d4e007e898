package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"trackcycle/internal/aggregate"
	"trackcycle/internal/domain"
)

// Mode selects which entries a grouped export covers.
type Mode string

const (
	ModeDay  Mode = "day"
	ModeWeek Mode = "week"
	ModeAll  Mode = "all"
)

// GroupedOptions configures a grouped export. Day applies in day mode;
// From/To bound an inclusive date range in week mode.
type GroupedOptions struct {
	Mode Mode
	Day  time.Time
	From time.Time
	To   time.Time
}

// GroupedRecord is one line of the external timesheet format.
type GroupedRecord struct {
	Date        string `json:"date"`
	Hours       string `json:"hours"`
	Customer    string `json:"customer"`
	Project     string `json:"project"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
}

// GroupedRecords filters entries by mode, groups them by project and
// description, and produces one record per group. Pauses are always
// excluded. Raw minutes are summed per group and the rounding policy is
// applied once to the sum; hours use a comma decimal separator. Names
// are resolved from the live collections, empty when unresolved.
func GroupedRecords(entries []domain.TimeEntry, projects []domain.Project, customers []domain.Customer, settings domain.Settings, opts GroupedOptions) []GroupedRecord {
	projectIndex := domain.ProjectIndex(projects)
	customerIndex := domain.CustomerIndex(customers)

	var selected []domain.TimeEntry
	for _, entry := range entries {
		if entry.IsPause() || entry.Running() {
			continue
		}
		switch opts.Mode {
		case ModeDay:
			if !aggregate.SameDay(entry.Start, opts.Day) {
				continue
			}
		case ModeWeek:
			day := aggregate.DayStart(entry.Start)
			if day.Before(aggregate.DayStart(opts.From)) || day.After(aggregate.DayStart(opts.To)) {
				continue
			}
		}
		selected = append(selected, entry)
	}

	groups := aggregate.GroupByTask(selected)

	records := make([]GroupedRecord, 0, len(groups))
	for _, key := range aggregate.TaskKeys(selected) {
		group := groups[key]
		first := group[0]

		var minutes float64
		for _, entry := range group {
			minutes += entry.Minutes()
		}
		hours := aggregate.RoundMinutes(minutes, settings.RoundToQuarter) / 60

		var projectName, customerName, activityLabel string
		if project, ok := projectIndex[first.ProjectID]; ok {
			projectName = project.Name
			if customer, ok := customerIndex[project.CustomerID]; ok {
				customerName = customer.Name
			}
			if activity, ok := project.ActivityByID(first.ActivityID); ok {
				activityLabel = activity.Label
			}
		}

		records = append(records, GroupedRecord{
			Date:        first.Start.Format(csvDateFormat),
			Hours:       formatCommaHours(hours),
			Customer:    customerName,
			Project:     projectName,
			Activity:    activityLabel,
			Description: first.Description,
		})
	}

	return records
}

// GroupedJSON marshals the grouped records pretty-printed.
func GroupedJSON(entries []domain.TimeEntry, projects []domain.Project, customers []domain.Customer, settings domain.Settings, opts GroupedOptions) ([]byte, error) {
	records := GroupedRecords(entries, projects, customers, settings, opts)
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal grouped export: %w", err)
	}
	return data, nil
}

// GroupedFilename is the conventional output name for a grouped export.
func GroupedFilename(now time.Time) string {
	return fmt.Sprintf("ConAktiv_Export_%s.json", now.Format("2006-01-02"))
}

// formatCommaHours renders hours with two decimals and a comma
// separator, e.g. 1.5 -> "1,50".
func formatCommaHours(hours float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", hours), ".", ",", 1)
}
