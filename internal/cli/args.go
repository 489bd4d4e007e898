package cli

import (
	"context"
	"strings"
	"time"

	"trackcycle/internal/domain"
	"trackcycle/internal/errors"
)

const dateArgFormat = "2006-01-02"

// parseTimePoint accepts "15:04" (today, relative to now) or a full
// "2006-01-02 15:04" timestamp.
func parseTimePoint(value string, now time.Time) (time.Time, error) {
	cleaned := strings.TrimSpace(value)

	if t, err := time.ParseInLocation("15:04", cleaned, now.Location()); err == nil {
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", cleaned, now.Location()); err == nil {
		return t, nil
	}
	return time.Time{}, errors.NewValidationError("invalid time: "+value+" (use 15:04 or 2006-01-02 15:04)", nil)
}

// parseDayArg accepts "2006-01-02" or the keywords "today" and
// "yesterday", defaulting to today.
func parseDayArg(value string, now time.Time) (time.Time, error) {
	cleaned := strings.ToLower(strings.TrimSpace(value))
	switch cleaned {
	case "", "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}

	day, err := time.ParseInLocation(dateArgFormat, cleaned, now.Location())
	if err != nil {
		return time.Time{}, errors.NewValidationError("invalid date: "+value+" (use 2006-01-02)", nil)
	}
	return day, nil
}

// resolveEntryID expands an id prefix, as shown in list output, to the
// full entry id. Ambiguous prefixes are rejected.
func (a *App) resolveEntryID(ctx context.Context, ref string) (string, error) {
	rows, err := a.businessAPI.ListEntries(ctx, "")
	if err != nil {
		return "", err
	}

	matches := make([]string, 0, 1)
	for _, row := range rows {
		if row.Entry.ID == ref {
			return ref, nil
		}
		if strings.HasPrefix(row.Entry.ID, ref) {
			matches = append(matches, row.Entry.ID)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", errors.NewNotFoundError("entry", ref)
	default:
		return "", errors.NewValidationError("entry id prefix is ambiguous: "+ref, nil)
	}
}

// resolveProject matches a project by id first, then by
// case-insensitive name.
func (a *App) resolveProject(ctx context.Context, ref string) (*domain.Project, error) {
	projects, err := a.businessAPI.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		if projects[i].ID == ref {
			return &projects[i], nil
		}
	}
	for i := range projects {
		if strings.EqualFold(projects[i].Name, ref) {
			return &projects[i], nil
		}
	}
	return nil, errors.NewNotFoundError("project", ref)
}
