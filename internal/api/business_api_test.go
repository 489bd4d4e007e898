package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackcycle/internal/config"
	"trackcycle/internal/repository/sqlite"
)

func setupAPI(t *testing.T) BusinessAPI {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return NewBusinessAPI(repo, config.NewConfig())
}

func TestBusinessAPI_TimerLifecycle(t *testing.T) {
	businessAPI := setupAPI(t)
	ctx := context.Background()

	project, err := businessAPI.CreateProject(ctx, "Website", "")
	require.NoError(t, err)

	start := time.Now().Add(-30 * time.Minute)
	entry, err := businessAPI.StartTimer(ctx, project.ID, "Review", "", &start)
	require.NoError(t, err)
	assert.True(t, entry.Running())

	status, err := businessAPI.CurrentTimer(ctx)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, "Website", status.ProjectName)
	assert.GreaterOrEqual(t, status.Elapsed, 29*time.Minute)

	stopped, err := businessAPI.StopTimer(ctx)
	require.NoError(t, err)
	assert.True(t, stopped.Closed())

	status, err = businessAPI.CurrentTimer(ctx)
	require.NoError(t, err)
	assert.Nil(t, status)
}

func TestBusinessAPI_ListEntriesWithRange(t *testing.T) {
	businessAPI := setupAPI(t)
	ctx := context.Background()

	project, err := businessAPI.CreateProject(ctx, "Website", "")
	require.NoError(t, err)

	oldStart := time.Now().Add(-48 * time.Hour)
	_, err = businessAPI.StartTimer(ctx, project.ID, "Old", "", &oldStart)
	require.NoError(t, err)
	_, err = businessAPI.StopTimer(ctx)
	require.NoError(t, err)

	recentStart := time.Now().Add(-time.Hour)
	_, err = businessAPI.StartTimer(ctx, project.ID, "Recent", "", &recentStart)
	require.NoError(t, err)
	_, err = businessAPI.StopTimer(ctx)
	require.NoError(t, err)

	all, err := businessAPI.ListEntries(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	recent, err := businessAPI.ListEntries(ctx, "2h")
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Recent", recent[0].Entry.Description)
}

func TestBusinessAPI_DeleteAndUndo(t *testing.T) {
	businessAPI := setupAPI(t)
	ctx := context.Background()

	project, err := businessAPI.CreateProject(ctx, "Website", "")
	require.NoError(t, err)

	start := time.Now().Add(-time.Hour)
	entry, err := businessAPI.StartTimer(ctx, project.ID, "Review", "", &start)
	require.NoError(t, err)
	_, err = businessAPI.StopTimer(ctx)
	require.NoError(t, err)

	require.NoError(t, businessAPI.DeleteEntry(ctx, entry.ID))
	rows, err := businessAPI.ListEntries(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, rows)

	restored, err := businessAPI.UndoDelete(ctx)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, restored.ID)

	rows, err = businessAPI.ListEntries(ctx, "")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
