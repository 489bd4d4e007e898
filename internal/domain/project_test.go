package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProject_Ended(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)

	tests := []struct {
		name    string
		endDate *time.Time
		ended   bool
	}{
		{"no end date", nil, false},
		{"end date in the past", &past, true},
		{"end date in the future", &future, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProject("Website")
			p.EndDate = tt.endDate
			assert.Equal(t, tt.ended, p.Ended(now))
		})
	}
}

func TestProject_DefaultActivity(t *testing.T) {
	p := NewProject("Website")
	p.Activities = []Activity{
		{ID: "a1", Label: "Development"},
		{ID: "a2", Label: "Meetings", IsDefault: true},
	}

	activity, ok := p.DefaultActivity()
	assert.True(t, ok)
	assert.Equal(t, "a2", activity.ID)

	p.Activities = p.Activities[:1]
	_, ok = p.DefaultActivity()
	assert.False(t, ok)
}

func TestProject_IsValid(t *testing.T) {
	p := NewProject("Website")
	assert.True(t, p.IsValid())

	p.Activities = []Activity{
		{ID: "a1", Label: "Dev", IsDefault: true},
		{ID: "a2", Label: "Meetings", IsDefault: true},
	}
	assert.False(t, p.IsValid(), "two default activities must be rejected")

	assert.False(t, Project{ID: "p1"}.IsValid())
	assert.False(t, Project{Name: "x"}.IsValid())
}

func TestProjectIndex(t *testing.T) {
	a := NewProject("A")
	b := NewProject("B")

	index := ProjectIndex([]Project{a, b})

	assert.Len(t, index, 2)
	assert.Equal(t, "A", index[a.ID].Name)
	assert.Equal(t, "B", index[b.ID].Name)
}

func TestSettings_IsWorkday(t *testing.T) {
	settings := DefaultSettings()

	monday := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 1, 4, 12, 0, 0, 0, time.UTC)

	assert.True(t, settings.IsWorkday(monday))
	assert.False(t, settings.IsWorkday(saturday))

	settings.Workdays = []string{"sat", "sun"}
	assert.True(t, settings.IsWorkday(saturday))
	assert.False(t, settings.IsWorkday(monday))
}

func TestSettings_TargetMonthOf(t *testing.T) {
	now := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	settings := DefaultSettings()
	assert.Equal(t, time.May, settings.TargetMonthOf(now), "unset target month falls back to current")

	settings.TargetMonth = "Februar"
	assert.Equal(t, time.February, settings.TargetMonthOf(now))

	settings.TargetMonth = "NotAMonth"
	assert.Equal(t, time.May, settings.TargetMonthOf(now))
}

func TestSettings_Label(t *testing.T) {
	settings := DefaultSettings()
	settings.CustomLabels["p1::Standup"] = "Daily"

	assert.Equal(t, "Daily", settings.Label("p1::Standup", "Standup"))
	assert.Equal(t, "Standup", settings.Label("p2::Standup", "Standup"))
}
