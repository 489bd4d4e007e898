// Package export renders the entry log into the flat CSV, grouped
// timesheet JSON and full backup formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"trackcycle/internal/domain"
)

const (
	csvDateFormat = "02.01.2006"
	csvTimeFormat = "15:04"
)

var csvHeader = []string{
	"entryId", "date", "start", "end", "duration_h",
	"projectId", "projectName", "customerName", "description",
}

// WriteCSV writes one row per entry with semicolon separators. Project
// and customer names are resolved at export time; unresolved references
// leave the name empty. Newlines in descriptions are flattened so every
// entry stays on one row.
func WriteCSV(w io.Writer, entries []domain.TimeEntry, projects []domain.Project, customers []domain.Customer) error {
	projectIndex := domain.ProjectIndex(projects)
	customerIndex := domain.CustomerIndex(customers)

	writer := csv.NewWriter(w)
	writer.Comma = ';'

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, entry := range entries {
		var projectName, customerName string
		if project, ok := projectIndex[entry.ProjectID]; ok {
			projectName = project.Name
			if customer, ok := customerIndex[project.CustomerID]; ok {
				customerName = customer.Name
			}
		}

		end := ""
		if entry.End != nil {
			end = entry.End.Format(csvTimeFormat)
		}

		row := []string{
			entry.ID,
			entry.Start.Format(csvDateFormat),
			entry.Start.Format(csvTimeFormat),
			end,
			fmt.Sprintf("%.2f", entry.Duration()),
			entry.ProjectID,
			projectName,
			customerName,
			flattenDescription(entry.Description),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func flattenDescription(description string) string {
	description = strings.ReplaceAll(description, "\r\n", " ")
	description = strings.ReplaceAll(description, "\n", " ")
	return strings.TrimSpace(description)
}
