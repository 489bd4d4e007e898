package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackcycle/internal/config"
	"trackcycle/internal/domain"
	"trackcycle/internal/repository/sqlite"
)

func setupReporting(t *testing.T) (ReportingService, SettingsService, sqlite.Repository) {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	settings := NewSettingsService(repo)
	reporting := NewReportingService(repo, settings, config.NewConfig())
	return reporting, settings, repo
}

func seedEntry(t *testing.T, repo sqlite.Repository, entry domain.TimeEntry) {
	t.Helper()
	mapper := domain.NewMapper()
	dbEntry := mapper.TimeEntry.ToDatabase(entry)
	require.NoError(t, repo.CreateTimeEntry(context.Background(), &dbEntry))
}

var reportDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func reportEntry(projectID, description string, hour, durMin int) domain.TimeEntry {
	start := reportDay.Add(time.Duration(hour) * time.Hour)
	return domain.NewClosedEntry(projectID, description, "", start, start.Add(time.Duration(durMin)*time.Minute))
}

func TestReporting_DayOverview(t *testing.T) {
	reporting, _, repo := setupReporting(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateCustomer(ctx, &sqlite.Customer{ID: "c1", Name: "Acme"}))
	require.NoError(t, repo.CreateProject(ctx, &sqlite.Project{ID: "p1", Name: "Website", CustomerID: "c1", Activities: "[]"}))

	seedEntry(t, repo, reportEntry("p1", "Review", 9, 180))
	seedEntry(t, repo, reportEntry("p1", "Planning", 13, 120)) // 60 min gap after Review

	overview, err := reporting.DayOverview(ctx, reportDay)
	require.NoError(t, err)

	require.Len(t, overview.Entries, 2)
	assert.Equal(t, "Website", overview.Entries[0].ProjectName)
	assert.Equal(t, "Acme", overview.Entries[0].CustomerName)

	assert.InDelta(t, 5.0, overview.Total.RawHours, 0.001)
	require.Len(t, overview.Summary.Gaps, 1)
	assert.Equal(t, 60, overview.Summary.Gaps[0].Minutes)
	assert.True(t, overview.Summary.Incomplete)
	assert.Equal(t, 180, overview.Summary.RemainingMinutes)
}

func TestReporting_Stats(t *testing.T) {
	reporting, _, repo := setupReporting(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateProject(ctx, &sqlite.Project{ID: "p1", Name: "Website", Activities: "[]"}))
	seedEntry(t, repo, reportEntry("p1", "Review", 9, 8*60))

	now := reportDay.Add(18 * time.Hour)
	stats, err := reporting.Stats(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Streak)
	assert.Equal(t, 100, stats.FocusScore)
	assert.Equal(t, 1, stats.PerfectDays)
	assert.InDelta(t, 8.0, stats.AverageDay, 0.001)
	require.Len(t, stats.Distribution, 1)
	assert.Equal(t, "Website", stats.Distribution[0].Name)
	assert.Len(t, stats.WeeklySeries, 7)
	assert.Equal(t, 20, stats.Goals.WeeklyRawPercent) // 8 of 40 hours
}

func TestReporting_ListEntriesWithRange(t *testing.T) {
	reporting, _, repo := setupReporting(t)
	ctx := context.Background()

	seedEntry(t, repo, reportEntry("p1", "Review", 9, 60))
	other := domain.NewClosedEntry("p1", "Old", "", reportDay.AddDate(0, 0, -10), reportDay.AddDate(0, 0, -10).Add(time.Hour))
	seedEntry(t, repo, other)

	from := reportDay
	rows, err := reporting.ListEntries(ctx, &from, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Review", rows[0].Entry.Description)
}

func TestReporting_FavoritesAndSuggestions(t *testing.T) {
	reporting, settingsService, repo := setupReporting(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateProject(ctx, &sqlite.Project{ID: "p1", Name: "Website", Activities: "[]"}))
	for i := 0; i < 3; i++ {
		seedEntry(t, repo, reportEntry("p1", "Review", 9+i, 30))
	}

	suggestions, err := reporting.Suggestions(ctx)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Website", suggestions[0].ProjectName)
	assert.Equal(t, 3, suggestions[0].Count)

	favs, err := reporting.Favorites(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, domain.MakeTaskKey("p1", "Review"), favs[0].TaskKey)

	// Manual mode pins an explicit list
	settings, err := settingsService.GetSettings(ctx)
	require.NoError(t, err)
	settings.ManualMode = true
	settings.ManualFavorites = []string{domain.MakeTaskKey("p1", "Other")}
	require.NoError(t, settingsService.SaveSettings(ctx, settings))

	favs, err = reporting.Favorites(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, domain.MakeTaskKey("p1", "Other"), favs[0].TaskKey)
}
