package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackcycle/internal/errors"
)

func setupTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func newTestEntry(id string, start time.Time, end *time.Time) *TimeEntry {
	return &TimeEntry{
		ID:          id,
		ProjectID:   "p1",
		Description: "Review",
		ActivityID:  "a1",
		StartTime:   start,
		EndTime:     end,
	}
}

func TestTimeEntryCRUD(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	entry := newTestEntry("e1", start, &end)
	require.NoError(t, repo.CreateTimeEntry(ctx, entry))

	got, err := repo.GetTimeEntry(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ProjectID)
	assert.Equal(t, "Review", got.Description)
	assert.True(t, got.StartTime.Equal(start))
	require.NotNil(t, got.EndTime)
	assert.True(t, got.EndTime.Equal(end))

	got.Description = "Planning"
	require.NoError(t, repo.UpdateTimeEntry(ctx, got))

	updated, err := repo.GetTimeEntry(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Planning", updated.Description)

	require.NoError(t, repo.DeleteTimeEntry(ctx, "e1"))

	_, err = repo.GetTimeEntry(ctx, "e1")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestTimeEntryRunning(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateTimeEntry(ctx, newTestEntry("open", start, nil)))

	got, err := repo.GetTimeEntry(ctx, "open")
	require.NoError(t, err)
	assert.Nil(t, got.EndTime)
}

func TestSearchTimeEntries(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	day1 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	end1 := day1.Add(time.Hour)

	e1 := newTestEntry("e1", day1, &end1)
	e2 := newTestEntry("e2", day2, nil)
	e2.ProjectID = "p2"

	require.NoError(t, repo.CreateTimeEntry(ctx, e1))
	require.NoError(t, repo.CreateTimeEntry(ctx, e2))

	t.Run("time range", func(t *testing.T) {
		from := day1.Add(-time.Hour)
		to := day1.Add(time.Hour)
		results, err := repo.SearchTimeEntries(ctx, SearchOptions{StartTime: &from, EndTime: &to})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "e1", results[0].ID)
	})

	t.Run("project filter", func(t *testing.T) {
		projectID := "p2"
		results, err := repo.SearchTimeEntries(ctx, SearchOptions{ProjectID: &projectID})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "e2", results[0].ID)
	})

	t.Run("running only", func(t *testing.T) {
		results, err := repo.SearchTimeEntries(ctx, SearchOptions{RunningOnly: true})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "e2", results[0].ID)
	})

	t.Run("no filters returns all ordered by start", func(t *testing.T) {
		results, err := repo.SearchTimeEntries(ctx, SearchOptions{})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "e1", results[0].ID)
		assert.Equal(t, "e2", results[1].ID)
	})
}

func TestProjectCRUD(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	endDate := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	maxHours := 120.0
	project := &Project{
		ID:         "p1",
		Name:       "Website",
		CustomerID: "c1",
		Activities: `[{"id":"a1","label":"Dev","isDefault":true}]`,
		EndDate:    &endDate,
		MaxHours:   &maxHours,
	}
	require.NoError(t, repo.CreateProject(ctx, project))

	got, err := repo.GetProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Website", got.Name)
	assert.Equal(t, "c1", got.CustomerID)
	assert.JSONEq(t, project.Activities, got.Activities)
	require.NotNil(t, got.EndDate)
	assert.True(t, got.EndDate.Equal(endDate))
	require.NotNil(t, got.MaxHours)
	assert.Equal(t, 120.0, *got.MaxHours)

	got.Name = "Relaunch"
	require.NoError(t, repo.UpdateProject(ctx, got))

	updated, err := repo.GetProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Relaunch", updated.Name)

	require.NoError(t, repo.DeleteProject(ctx, "p1"))
	_, err = repo.GetProject(ctx, "p1")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestListProjectsOrdering(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateProject(ctx, &Project{ID: "p1", Name: "Zebra", Activities: "[]"}))
	require.NoError(t, repo.CreateProject(ctx, &Project{ID: "p2", Name: "Alpha", Activities: "[]"}))

	projects, err := repo.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Alpha", projects[0].Name)
	assert.Equal(t, "Zebra", projects[1].Name)
}

func TestCustomerCRUD(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateCustomer(ctx, &Customer{ID: "c1", Name: "Acme"}))

	got, err := repo.GetCustomer(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)

	got.Name = "Acme GmbH"
	require.NoError(t, repo.UpdateCustomer(ctx, got))

	customers, err := repo.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Acme GmbH", customers[0].Name)

	require.NoError(t, repo.DeleteCustomer(ctx, "c1"))
	_, err = repo.GetCustomer(ctx, "c1")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestSettingsRoundTrip(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	data, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Empty(t, data)

	require.NoError(t, repo.SaveSettings(ctx, `{"weeklyHours":40}`))

	data, err = repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"weeklyHours":40}`, data)

	require.NoError(t, repo.SaveSettings(ctx, `{"weeklyHours":32}`))

	data, err = repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"weeklyHours":32}`, data)
}

func TestReplaceAll(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateTimeEntry(ctx, newTestEntry("old", start, nil)))
	require.NoError(t, repo.CreateProject(ctx, &Project{ID: "oldp", Name: "Old", Activities: "[]"}))
	require.NoError(t, repo.SaveSettings(ctx, `{"weeklyHours":40}`))

	end := start.Add(time.Hour)
	err := repo.ReplaceAll(ctx,
		[]*TimeEntry{newTestEntry("new", start, &end)},
		[]*Project{{ID: "newp", Name: "New", Activities: "[]"}},
		[]*Customer{{ID: "newc", Name: "Client"}},
		`{"weeklyHours":32}`,
	)
	require.NoError(t, err)

	entries, err := repo.ListTimeEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "new", entries[0].ID)

	projects, err := repo.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "newp", projects[0].ID)

	customers, err := repo.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "newc", customers[0].ID)

	data, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"weeklyHours":32}`, data)
}

func TestUpdateMissingEntryReturnsNotFound(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	entry := newTestEntry("ghost", time.Now(), nil)
	err := repo.UpdateTimeEntry(ctx, entry)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}
