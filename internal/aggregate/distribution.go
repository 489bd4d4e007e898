package aggregate

import (
	"sort"

	"trackcycle/internal/domain"
)

// ProjectHours is one slice of the per-project distribution.
type ProjectHours struct {
	ProjectID string
	Name      string
	Hours     float64
}

// ProjectDistribution sums tracked hours per project over the given
// entries, excluding pauses and running entries. Project names are
// joined from the live project list at computation time; an unknown
// project id is shown as-is. Rounding is applied once per project.
func ProjectDistribution(entries []domain.TimeEntry, projects []domain.Project, rounding bool) []ProjectHours {
	index := domain.ProjectIndex(projects)

	minutes := make(map[string]float64)
	var order []string
	for _, entry := range entries {
		if entry.IsPause() || entry.Running() {
			continue
		}
		if _, seen := minutes[entry.ProjectID]; !seen {
			order = append(order, entry.ProjectID)
		}
		minutes[entry.ProjectID] += entry.Minutes()
	}

	result := make([]ProjectHours, 0, len(order))
	for _, projectID := range order {
		name := projectID
		if project, ok := index[projectID]; ok {
			name = project.Name
		}
		result = append(result, ProjectHours{
			ProjectID: projectID,
			Name:      name,
			Hours:     RoundMinutes(minutes[projectID], rounding) / 60,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Hours != result[j].Hours {
			return result[i].Hours > result[j].Hours
		}
		return result[i].Name < result[j].Name
	})

	return result
}
