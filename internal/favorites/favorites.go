// Package favorites derives pinned and suggested tasks from the entry
// log and the user's settings.
package favorites

import (
	"sort"
	"strings"

	"trackcycle/internal/domain"
)

// Favorite is one resolved entry of the favorites list.
type Favorite struct {
	TaskKey     string
	ProjectID   string
	ProjectName string
	Description string
	Label       string
	CustomerID  string
	ActivityID  string
	Hours       float64
	Count       int
}

// Suggestion is a frequently used task offered for quick start.
type Suggestion struct {
	TaskKey     string
	ProjectID   string
	ProjectName string
	Description string
	Count       int
}

// taskCounts tallies non-pause task keys in first-seen order.
func taskCounts(entries []domain.TimeEntry) (map[string]int, []string) {
	counts := make(map[string]int)
	var order []string
	for _, entry := range entries {
		if entry.IsPause() {
			continue
		}
		key := entry.TaskKey()
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	return counts, order
}

// Suggestions returns the tasks used at least minCount times. Project
// names are resolved from the live project list so renamed projects
// show their current name.
func Suggestions(entries []domain.TimeEntry, projects []domain.Project, minCount int) []Suggestion {
	counts, order := taskCounts(entries)
	index := domain.ProjectIndex(projects)

	var suggestions []Suggestion
	for _, key := range order {
		if counts[key] < minCount {
			continue
		}
		projectID, description := domain.SplitTaskKey(key)
		suggestions = append(suggestions, Suggestion{
			TaskKey:     key,
			ProjectID:   projectID,
			ProjectName: projectName(index, projectID),
			Description: strings.TrimSpace(description),
			Count:       counts[key],
		})
	}
	return suggestions
}

// Resolve builds the favorites list. With manual mode on and pinned
// keys present, the user's exact order is kept and duplicates are
// dropped first-seen. Otherwise the most frequent tasks fill the list
// up to limit, ties broken by first occurrence.
func Resolve(entries []domain.TimeEntry, projects []domain.Project, settings domain.Settings, limit int) []Favorite {
	index := domain.ProjectIndex(projects)
	counts, order := taskCounts(entries)

	if settings.ManualMode && len(settings.ManualFavorites) > 0 {
		seen := make(map[string]bool)
		var favorites []Favorite
		for _, key := range settings.ManualFavorites {
			if seen[key] {
				continue
			}
			seen[key] = true
			favorites = append(favorites, resolveOne(key, index, counts, settings))
		}
		return favorites
	}

	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	favorites := make([]Favorite, 0, len(ranked))
	for _, key := range ranked {
		favorites = append(favorites, resolveOne(key, index, counts, settings))
	}
	return favorites
}

// resolveOne builds a favorite from the explicit detail record when one
// exists, else from the task key itself.
func resolveOne(key string, index map[string]domain.Project, counts map[string]int, settings domain.Settings) Favorite {
	projectID, description := domain.SplitTaskKey(key)

	favorite := Favorite{
		TaskKey:     key,
		ProjectID:   projectID,
		ProjectName: projectName(index, projectID),
		Description: description,
		Count:       counts[key],
	}

	if detail, ok := settings.FavoriteDetails[key]; ok {
		if detail.ProjectID != "" {
			favorite.ProjectID = detail.ProjectID
			favorite.ProjectName = projectName(index, detail.ProjectID)
		}
		if detail.Description != "" {
			favorite.Description = detail.Description
		}
		favorite.CustomerID = detail.CustomerID
		favorite.ActivityID = detail.ActivityID
		favorite.Hours = detail.Hours
	}

	favorite.Label = settings.Label(key, favorite.Description)
	return favorite
}

func projectName(index map[string]domain.Project, projectID string) string {
	if project, ok := index[projectID]; ok {
		return project.Name
	}
	return projectID
}
