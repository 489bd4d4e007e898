package favorites

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackcycle/internal/domain"
)

var base = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func entry(projectID, description string, offsetHours int) domain.TimeEntry {
	start := base.Add(time.Duration(offsetHours) * time.Hour)
	return domain.NewClosedEntry(projectID, description, "", start, start.Add(30*time.Minute))
}

func repeat(projectID, description string, times int) []domain.TimeEntry {
	entries := make([]domain.TimeEntry, 0, times)
	for i := 0; i < times; i++ {
		entries = append(entries, entry(projectID, description, i))
	}
	return entries
}

func TestSuggestions(t *testing.T) {
	projects := []domain.Project{{ID: "p1", Name: "Website"}}
	entries := append(repeat("p1", "Review", 2), entry("p2", "Once", 10))

	suggestions := Suggestions(entries, projects, 2)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "p1", suggestions[0].ProjectID)
	assert.Equal(t, "Website", suggestions[0].ProjectName)
	assert.Equal(t, "Review", suggestions[0].Description)
	assert.Equal(t, 2, suggestions[0].Count)
}

func TestSuggestions_ExcludePauses(t *testing.T) {
	entries := []domain.TimeEntry{
		domain.NewPauseEntry(base, base.Add(30*time.Minute)),
		domain.NewPauseEntry(base.Add(time.Hour), base.Add(2*time.Hour)),
	}

	assert.Empty(t, Suggestions(entries, nil, 2))
}

func TestSuggestions_RenamedProjectShowsCurrentName(t *testing.T) {
	projects := []domain.Project{{ID: "p1", Name: "Relaunch"}}
	suggestions := Suggestions(repeat("p1", "Review", 3), projects, 2)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Relaunch", suggestions[0].ProjectName)
}

func TestResolve_ManualOrderAndDeDup(t *testing.T) {
	keyA := domain.MakeTaskKey("p1", "A")
	keyB := domain.MakeTaskKey("p2", "B")

	settings := domain.DefaultSettings()
	settings.ManualMode = true
	settings.ManualFavorites = []string{keyB, keyA, keyB}

	favorites := Resolve(nil, nil, settings, 8)
	require.Len(t, favorites, 2)
	assert.Equal(t, keyB, favorites[0].TaskKey)
	assert.Equal(t, keyA, favorites[1].TaskKey)
}

func TestResolve_ManualUsesFavoriteDetails(t *testing.T) {
	key := domain.MakeTaskKey("p1", "Review")
	settings := domain.DefaultSettings()
	settings.ManualMode = true
	settings.ManualFavorites = []string{key}
	settings.FavoriteDetails = map[string]domain.FavoriteDetail{
		key: {ProjectID: "p1", Description: "Code Review", CustomerID: "c1", ActivityID: "a1", Hours: 2},
	}
	projects := []domain.Project{{ID: "p1", Name: "Website"}}

	favorites := Resolve(nil, projects, settings, 8)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Code Review", favorites[0].Description)
	assert.Equal(t, "c1", favorites[0].CustomerID)
	assert.Equal(t, "a1", favorites[0].ActivityID)
	assert.Equal(t, 2.0, favorites[0].Hours)
	assert.Equal(t, "Website", favorites[0].ProjectName)
}

func TestResolve_ManualFallsBackToTaskKey(t *testing.T) {
	key := domain.MakeTaskKey("p1", "Review")
	settings := domain.DefaultSettings()
	settings.ManualMode = true
	settings.ManualFavorites = []string{key}

	favorites := Resolve(repeat("p1", "Review", 3), nil, settings, 8)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Review", favorites[0].Description)
	assert.Equal(t, 3, favorites[0].Count)
}

func TestResolve_FrequencyFallback(t *testing.T) {
	entries := append(repeat("p1", "A", 1), repeat("p2", "B", 3)...)
	entries = append(entries, repeat("p3", "C", 2)...)

	settings := domain.DefaultSettings()

	favorites := Resolve(entries, nil, settings, 8)
	require.Len(t, favorites, 3)
	assert.Equal(t, domain.MakeTaskKey("p2", "B"), favorites[0].TaskKey)
	assert.Equal(t, domain.MakeTaskKey("p3", "C"), favorites[1].TaskKey)
	assert.Equal(t, domain.MakeTaskKey("p1", "A"), favorites[2].TaskKey)
}

func TestResolve_FrequencyTieBreaksByFirstOccurrence(t *testing.T) {
	entries := append(repeat("p1", "A", 2), repeat("p2", "B", 2)...)

	favorites := Resolve(entries, nil, domain.DefaultSettings(), 8)
	require.Len(t, favorites, 2)
	assert.Equal(t, domain.MakeTaskKey("p1", "A"), favorites[0].TaskKey)
}

func TestResolve_LimitApplies(t *testing.T) {
	var entries []domain.TimeEntry
	for _, p := range []string{"p1", "p2", "p3"} {
		entries = append(entries, repeat(p, "X", 2)...)
	}

	favorites := Resolve(entries, nil, domain.DefaultSettings(), 2)
	assert.Len(t, favorites, 2)
}

func TestResolve_CustomLabelOverride(t *testing.T) {
	key := domain.MakeTaskKey("p1", "Review")
	settings := domain.DefaultSettings()
	settings.ManualMode = true
	settings.ManualFavorites = []string{key}
	settings.CustomLabels = map[string]string{key: "Wochenreview"}

	favorites := Resolve(nil, nil, settings, 8)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Wochenreview", favorites[0].Label)
}
