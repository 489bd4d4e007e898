package validation

import (
	"strings"
	"time"
)

const (
	nameMinLength = 1
	nameMaxLength = 255
	maxDuration   = 24 * time.Hour
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidNameLength checks if a display name length is within limits
func (v *Validator) IsValidNameLength(s string) bool {
	length := len(strings.TrimSpace(s))
	return length >= nameMinLength && length <= nameMaxLength
}

// IsValidTimeRange checks if start time is before end time. A nil end
// means the entry is still running, which is valid.
func (v *Validator) IsValidTimeRange(startTime time.Time, endTime *time.Time) bool {
	if endTime == nil {
		return true
	}
	return startTime.Before(*endTime)
}

// IsValidDuration checks if a duration is positive and at most one day.
// A single booking never legitimately spans more than 24 hours.
func (v *Validator) IsValidDuration(duration time.Duration) bool {
	return duration > 0 && duration <= maxDuration
}

// IsReasonableDate checks if a date is within reasonable bounds: ten
// years back to one year ahead.
func (v *Validator) IsReasonableDate(t time.Time) bool {
	now := time.Now()
	return t.After(now.AddDate(-10, 0, 0)) && t.Before(now.AddDate(1, 0, 0))
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
