package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"

	"trackcycle/internal/aggregate"
)

// StatsCommand renders the statistics snapshot: streak, focus, goals,
// project distribution and the weekly chart.
type StatsCommand struct {
	app *App
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{app: app}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	stats, err := c.app.businessAPI.Statistics(ctx, c.app.clock())
	if err != nil {
		return c.app.errorHandler.Handle("show statistics", err)
	}

	c.app.printf("%s\n", heading("Overview"))
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Streak", fmt.Sprintf("%d day(s)", stats.Streak))
	tbl.AddRow("Focus score", fmt.Sprintf("%d/100", stats.FocusScore))
	tbl.AddRow("Average day", formatHours(stats.AverageDay))
	tbl.AddRow("Perfect days", fmt.Sprintf("%d", stats.PerfectDays))
	tbl.AddRow("Pause total", formatHours(stats.PauseHours))
	tbl.AddRow("Week vs last", formatDeltaPercent(stats.WeekComparison.DeltaPercent))
	fmt.Fprintln(c.app.out, tbl)

	c.app.printf("\n%s\n", heading("Goals"))
	goals := stats.Goals
	c.app.printf("Week   %s %3d%%  (%s of %s)\n",
		progressBar(goals.WeeklyRoundedPercent), goals.WeeklyRoundedPercent,
		formatHours(goals.WeeklyRoundedHours), formatHours(goals.WeeklyGoalHours))
	c.app.printf("Month  %s %3d%%  (%s of %s)\n",
		progressBar(goals.MonthlyRoundedPercent), goals.MonthlyRoundedPercent,
		formatHours(goals.MonthlyRoundedHours), formatHours(goals.MonthlyGoalHours))

	if len(stats.Distribution) > 0 {
		c.app.printf("\n%s\n", heading("Projects"))
		dist := uitable.New()
		dist.Separator = "  "
		for _, p := range stats.Distribution {
			dist.AddRow(p.Name, formatHours(p.Hours))
		}
		fmt.Fprintln(c.app.out, dist)
	}

	c.app.printf("\n%s\n", heading("Last 7 Days"))
	c.printWeeklyChart(stats.WeeklySeries)
	return nil
}

func formatDeltaPercent(delta int) string {
	text := fmt.Sprintf("%+d%%", delta)
	if delta >= 0 {
		return good(text)
	}
	return warn(text)
}

// printWeeklyChart draws one bar per day, scaled to the busiest day.
func (c *StatsCommand) printWeeklyChart(series []aggregate.DayBucket) {
	max := 0.0
	for _, b := range series {
		if b.Hours > max {
			max = b.Hours
		}
	}

	for _, b := range series {
		width := 0
		if max > 0 {
			width = int(b.Hours / max * 20)
		}
		bar := strings.Repeat(barFilled, width)
		label := b.Label
		if !b.IsWorkday {
			label = dim(label)
		}
		c.app.printf("%s %s %s\n", label, accent(bar), formatHours(b.Hours))
	}
}
