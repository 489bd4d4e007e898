package domain

import "time"

// FavoriteDetail is the richer favorite record stored per task key when
// the user pins favorites manually.
type FavoriteDetail struct {
	ProjectID   string  `json:"projectId"`
	Description string  `json:"description"`
	CustomerID  string  `json:"customerId,omitempty"`
	ActivityID  string  `json:"activityId,omitempty"`
	Hours       float64 `json:"hours,omitempty"`
}

// Settings is the single user configuration record. It is passed
// explicitly into every aggregation/metrics call; computation functions
// never read it from ambient storage.
type Settings struct {
	RoundToQuarter  bool                      `json:"roundToQuarter"`
	ShowFavorites   bool                      `json:"showFavorites"`
	ManualMode      bool                      `json:"manualMode"`
	ManualFavorites []string                  `json:"manualFavorites"`
	CustomLabels    map[string]string         `json:"customLabels"`
	FavoriteDetails map[string]FavoriteDetail `json:"favoriteDetails,omitempty"`
	Workdays        []string                  `json:"workdays"`
	WeeklyHours     float64                   `json:"weeklyHours"`
	TargetMonth     string                    `json:"targetMonth,omitempty"`
	AccentColor     string                    `json:"accentColor,omitempty"`
}

// DefaultSettings returns the configuration used before the user has
// saved anything: Mon-Fri workdays, 40h weekly target, rounding off.
func DefaultSettings() Settings {
	return Settings{
		ShowFavorites:   true,
		ManualFavorites: []string{},
		CustomLabels:    map[string]string{},
		Workdays:        []string{"mon", "tue", "wed", "thu", "fri"},
		WeeklyHours:     40,
		AccentColor:     "indigo",
	}
}

var weekdayTokens = [...]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// WeekdayToken returns the settings token for a weekday ("mon".."sun").
func WeekdayToken(t time.Time) string {
	return weekdayTokens[int(t.Weekday())]
}

// IsWorkday reports whether the given day is one of the configured workdays.
func (s Settings) IsWorkday(t time.Time) bool {
	token := WeekdayToken(t)
	for _, w := range s.Workdays {
		if w == token {
			return true
		}
	}
	return false
}

// German month names, index 0 = January. The target month setting stores
// the month by its display name.
var monthNames = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// TargetMonthOf resolves the configured target month, falling back to
// the current month when unset or unknown.
func (s Settings) TargetMonthOf(now time.Time) time.Month {
	for i, name := range monthNames {
		if s.TargetMonth == name {
			return time.Month(i + 1)
		}
	}
	return now.Month()
}

// Label returns the display label for a task key, honoring the user's
// custom label overrides.
func (s Settings) Label(taskKey, fallback string) string {
	if label, ok := s.CustomLabels[taskKey]; ok && label != "" {
		return label
	}
	return fallback
}
