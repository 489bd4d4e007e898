package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackcycle/internal/aggregate"
	"trackcycle/internal/api"
	"trackcycle/internal/config"
	"trackcycle/internal/domain"
	"trackcycle/internal/errors"
	"trackcycle/internal/gaps"
	"trackcycle/internal/metrics"
	"trackcycle/internal/services"
)

var testNow = time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

func setupCommandTest(t *testing.T, mock *mockBusinessAPI) (*App, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	app := NewApp(mock, config.NewConfig()).
		WithOutput(buf).
		WithClock(func() time.Time { return testNow })
	return app, buf
}

func websiteProject() domain.Project {
	project := domain.NewProject("Website")
	project.ID = "p1"
	return project
}

func TestStartCommand(t *testing.T) {
	var gotProjectID string
	mock := &mockBusinessAPI{
		ListProjectsFunc: func(ctx context.Context) ([]domain.Project, error) {
			return []domain.Project{websiteProject()}, nil
		},
		StartTimerFunc: func(ctx context.Context, projectID, description, activityID string, at *time.Time) (*domain.TimeEntry, error) {
			gotProjectID = projectID
			entry := domain.NewTimeEntry(projectID, description, activityID, testNow)
			return &entry, nil
		},
	}
	app, buf := setupCommandTest(t, mock)

	err := NewStartCommand(app).Execute(context.Background(), []string{"website", "Code", "review"})
	require.NoError(t, err)
	assert.Equal(t, "p1", gotProjectID)
	assert.Contains(t, buf.String(), "Started Website: Code review")
}

func TestStartCommand_UnknownProject(t *testing.T) {
	mock := &mockBusinessAPI{}
	app, _ := setupCommandTest(t, mock)

	err := NewStartCommand(app).Execute(context.Background(), []string{"ghost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start timer")
}

func TestStartCommand_BackdatedStart(t *testing.T) {
	var gotAt *time.Time
	mock := &mockBusinessAPI{
		ListProjectsFunc: func(ctx context.Context) ([]domain.Project, error) {
			return []domain.Project{websiteProject()}, nil
		},
		StartTimerFunc: func(ctx context.Context, projectID, description, activityID string, at *time.Time) (*domain.TimeEntry, error) {
			gotAt = at
			entry := domain.NewTimeEntry(projectID, description, activityID, *at)
			return &entry, nil
		},
	}
	app, _ := setupCommandTest(t, mock)

	handler := NewStartCommand(app)
	handler.At = "09:30"
	require.NoError(t, handler.Execute(context.Background(), []string{"p1"}))
	require.NotNil(t, gotAt)
	assert.Equal(t, 9, gotAt.Hour())
	assert.Equal(t, 30, gotAt.Minute())
	assert.Equal(t, testNow.Day(), gotAt.Day())
}

func TestStopCommand(t *testing.T) {
	mock := &mockBusinessAPI{
		StopTimerFunc: func(ctx context.Context) (*domain.TimeEntry, error) {
			entry := domain.NewClosedEntry("p1", "Review", "", testNow.Add(-90*time.Minute), testNow)
			return &entry, nil
		},
	}
	app, buf := setupCommandTest(t, mock)

	require.NoError(t, NewStopCommand(app).Execute(context.Background(), nil))
	assert.Contains(t, buf.String(), "1.50h tracked")
}

func TestStopCommand_Idle(t *testing.T) {
	mock := &mockBusinessAPI{
		StopTimerFunc: func(ctx context.Context) (*domain.TimeEntry, error) {
			return nil, errors.NewInvalidStateError("stop", "no timer is running")
		},
	}
	app, _ := setupCommandTest(t, mock)

	err := NewStopCommand(app).Execute(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stop timer")
}

func TestCurrentCommand(t *testing.T) {
	mock := &mockBusinessAPI{
		CurrentTimerFunc: func(ctx context.Context) (*api.TimerStatus, error) {
			entry := domain.NewTimeEntry("p1", "Review", "", testNow.Add(-83*time.Minute))
			return &api.TimerStatus{Entry: entry, ProjectName: "Website", Elapsed: 83 * time.Minute}, nil
		},
	}
	app, buf := setupCommandTest(t, mock)

	require.NoError(t, NewCurrentCommand(app).Execute(context.Background(), nil))
	assert.Contains(t, buf.String(), "Website: Review")
	assert.Contains(t, buf.String(), "1h 23m")
}

func TestCurrentCommand_Idle(t *testing.T) {
	app, buf := setupCommandTest(t, &mockBusinessAPI{})

	require.NoError(t, NewCurrentCommand(app).Execute(context.Background(), nil))
	assert.Contains(t, buf.String(), "No timer is currently running")
}

func TestDeleteCommand_ResolvesPrefix(t *testing.T) {
	entry := domain.NewClosedEntry("p1", "Review", "", testNow.Add(-2*time.Hour), testNow.Add(-time.Hour))
	entry.ID = "abcd1234-0000-0000-0000-000000000000"

	var deletedID string
	mock := &mockBusinessAPI{
		ListEntriesFunc: func(ctx context.Context, timeRange string) ([]services.EntryRow, error) {
			return []services.EntryRow{{Entry: entry, ProjectName: "Website"}}, nil
		},
		DeleteEntryFunc: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	app, buf := setupCommandTest(t, mock)

	require.NoError(t, NewDeleteCommand(app).Execute(context.Background(), []string{"abcd1234"}))
	assert.Equal(t, entry.ID, deletedID)
	assert.Contains(t, buf.String(), "tc undo")
}

func TestUndoCommand_NothingToUndo(t *testing.T) {
	mock := &mockBusinessAPI{
		UndoDeleteFunc: func(ctx context.Context) (*domain.TimeEntry, error) {
			return nil, errors.NewNothingToUndoError()
		},
	}
	app, buf := setupCommandTest(t, mock)

	require.NoError(t, NewUndoCommand(app).Execute(context.Background(), nil))
	assert.Contains(t, buf.String(), "Nothing to undo")
}

func TestListCommand_Empty(t *testing.T) {
	app, buf := setupCommandTest(t, &mockBusinessAPI{})

	require.NoError(t, NewListCommand(app).Execute(context.Background(), nil))
	assert.Contains(t, buf.String(), "No entries found")
}

func TestListCommand_PassesRange(t *testing.T) {
	var gotRange string
	mock := &mockBusinessAPI{
		ListEntriesFunc: func(ctx context.Context, timeRange string) ([]services.EntryRow, error) {
			gotRange = timeRange
			entry := domain.NewClosedEntry("p1", "Review", "", testNow.Add(-time.Hour), testNow)
			return []services.EntryRow{{Entry: entry, ProjectName: "Website"}}, nil
		},
	}
	app, buf := setupCommandTest(t, mock)

	require.NoError(t, NewListCommand(app).Execute(context.Background(), []string{"2h"}))
	assert.Equal(t, "2h", gotRange)
	assert.Contains(t, buf.String(), "Website")
	assert.Contains(t, buf.String(), "Review")
}

func TestPauseCommand_ConvertsSelectedGap(t *testing.T) {
	gap := gaps.Gap{
		From:    testNow.Add(-4 * time.Hour),
		To:      testNow.Add(-3 * time.Hour),
		Minutes: 60,
	}

	var converted gaps.Gap
	mock := &mockBusinessAPI{
		DayOverviewFunc: func(ctx context.Context, day time.Time) (*services.DayOverview, error) {
			overview := &services.DayOverview{Day: day}
			overview.Summary.Gaps = []gaps.Gap{gap}
			return overview, nil
		},
		ConvertGapToPauseFunc: func(ctx context.Context, g gaps.Gap) (*domain.TimeEntry, error) {
			converted = g
			entry := domain.NewPauseEntry(g.From, g.To)
			return &entry, nil
		},
	}
	app, buf := setupCommandTest(t, mock)

	require.NoError(t, NewPauseCommand(app).Execute(context.Background(), []string{"1"}))
	assert.Equal(t, gap, converted)
	assert.Contains(t, buf.String(), "Recorded pause")
}

func TestPauseCommand_UnknownGapNumber(t *testing.T) {
	app, _ := setupCommandTest(t, &mockBusinessAPI{})

	err := NewPauseCommand(app).Execute(context.Background(), []string{"3"})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestSummaryCommand_EmptyDay(t *testing.T) {
	app, buf := setupCommandTest(t, &mockBusinessAPI{})

	require.NoError(t, NewSummaryCommand(app).Execute(context.Background(), nil))
	assert.Contains(t, buf.String(), "Monday, 02.03.2026")
	assert.Contains(t, buf.String(), "No entries for this day")
}

func TestStatsCommand_RendersBundle(t *testing.T) {
	mock := &mockBusinessAPI{
		StatisticsFunc: func(ctx context.Context, now time.Time) (*services.StatsBundle, error) {
			bundle := &services.StatsBundle{
				Streak:      3,
				FocusScore:  85,
				AverageDay:  7.5,
				PerfectDays: 2,
				PauseHours:  1.25,
			}
			bundle.WeekComparison = aggregate.WeekComparison{ThisWeekHours: 10, LastWeekHours: 20, DeltaPercent: -50}
			bundle.Goals = metrics.GoalProgress{
				WeeklyGoalHours:       40,
				WeeklyRoundedHours:    16,
				WeeklyRoundedPercent:  40,
				MonthlyGoalHours:      177,
				MonthlyRoundedHours:   20,
				MonthlyRoundedPercent: 11,
			}
			bundle.Distribution = []aggregate.ProjectHours{{ProjectID: "p1", Name: "Website", Hours: 12.5}}
			bundle.WeeklySeries = []aggregate.DayBucket{
				{Day: testNow.AddDate(0, 0, -1), Label: "So", Hours: 0, IsWorkday: false},
				{Day: testNow, Label: "Mo", Hours: 4, IsWorkday: true},
			}
			return bundle, nil
		},
	}
	app, buf := setupCommandTest(t, mock)

	require.NoError(t, NewStatsCommand(app).Execute(context.Background(), nil))
	out := buf.String()
	assert.Contains(t, out, "3 day(s)")
	assert.Contains(t, out, "85/100")
	assert.Contains(t, out, "-50%")
	assert.Contains(t, out, " 40%")
	assert.Contains(t, out, " 11%")
	assert.Contains(t, out, "16.00h of 40.00h")
	assert.Contains(t, out, "Website")
	assert.Contains(t, out, "4.00h")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, 10, strings.Count(progressBar(0), barEmpty))
	assert.Equal(t, 4, strings.Count(progressBar(40), barFilled))
	assert.Equal(t, 10, strings.Count(progressBar(100), barFilled))
}

func TestEditCommand_NothingToChange(t *testing.T) {
	app, _ := setupCommandTest(t, &mockBusinessAPI{})

	err := NewEditCommand(app).Execute(context.Background(), []string{"abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")
}

func TestParseTimePoint(t *testing.T) {
	got, err := parseTimePoint("09:15", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC), got)

	got, err = parseTimePoint("2026-02-28 23:45", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 28, 23, 45, 0, 0, time.UTC), got)

	_, err = parseTimePoint("soon", testNow)
	assert.Error(t, err)
}

func TestParseDayArg(t *testing.T) {
	got, err := parseDayArg("", testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow, got)

	got, err = parseDayArg("yesterday", testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.AddDate(0, 0, -1), got)

	got, err = parseDayArg("2026-01-15", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = parseDayArg("15.01.2026", testNow)
	assert.Error(t, err)
}
