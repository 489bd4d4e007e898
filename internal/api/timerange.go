package api

import (
	"strconv"
	"strings"
	"time"

	"trackcycle/internal/aggregate"
	"trackcycle/internal/errors"
)

// TimeRange is a half-open interval ending now, parsed from shorthand.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ParseTimeRange converts shorthand ("30m", "2h", "7d", "1w") or the
// keywords "today" and "week" into a concrete range ending at now.
func ParseTimeRange(timeStr string, now time.Time) (*TimeRange, error) {
	cleaned := strings.ToLower(strings.TrimSpace(timeStr))
	if cleaned == "" {
		return nil, errors.NewValidationError("time range cannot be empty", nil)
	}

	switch cleaned {
	case "today":
		return &TimeRange{Start: aggregate.DayStart(now), End: now}, nil
	case "week":
		return &TimeRange{Start: aggregate.WeekStart(now), End: now}, nil
	}

	unit := cleaned[len(cleaned)-1]
	value, err := strconv.Atoi(cleaned[:len(cleaned)-1])
	if err != nil || value <= 0 {
		return nil, errors.NewValidationError("invalid time range format: "+timeStr, err)
	}

	var duration time.Duration
	switch unit {
	case 'm':
		duration = time.Duration(value) * time.Minute
	case 'h':
		duration = time.Duration(value) * time.Hour
	case 'd':
		duration = time.Duration(value) * 24 * time.Hour
	case 'w':
		duration = time.Duration(value) * 7 * 24 * time.Hour
	default:
		return nil, errors.NewValidationError("unknown time range unit: "+string(unit), nil)
	}

	return &TimeRange{Start: now.Add(-duration), End: now}, nil
}
