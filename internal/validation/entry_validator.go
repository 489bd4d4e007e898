package validation

import (
	"time"

	"trackcycle/internal/domain"
)

// TimeEntryValidator provides validation for time entry operations
type TimeEntryValidator struct {
	validator *Validator
}

// NewTimeEntryValidator creates a new time entry validator
func NewTimeEntryValidator() *TimeEntryValidator {
	return &TimeEntryValidator{
		validator: NewValidator(),
	}
}

// ValidateForStart validates the inputs of a timer start
func (tev *TimeEntryValidator) ValidateForStart(projectID, description string, startTime time.Time) error {
	validationError := NewValidationError()

	if !tev.validator.IsNonEmptyString(projectID) {
		validationError.AddRequiredError("project_id")
	}
	if !tev.validator.IsValidNameLength(description) && tev.validator.IsNonEmptyString(description) {
		validationError.AddInvalidLengthError("description", description, nameMinLength, nameMaxLength)
	}

	if startTime.IsZero() {
		validationError.AddRequiredError("start_time")
	} else if !tev.validator.IsReasonableDate(startTime) {
		validationError.AddInvalidValueError("start_time", startTime, "must be within reasonable date range")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateInterval validates the start/end pair of an entry edit
func (tev *TimeEntryValidator) ValidateInterval(startTime time.Time, endTime *time.Time) error {
	validationError := NewValidationError()

	if startTime.IsZero() {
		validationError.AddRequiredError("start_time")
	}

	if endTime != nil {
		if !tev.validator.IsValidTimeRange(startTime, endTime) {
			validationError.AddInvalidRangeError("time_range", map[string]time.Time{
				"start": startTime,
				"end":   *endTime,
			}, "end time must be after start time")
		} else if !tev.validator.IsValidDuration(endTime.Sub(startTime)) {
			validationError.AddInvalidValueError("duration", endTime.Sub(startTime), "must be positive and less than 24 hours")
		}
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateEntry validates a full entry record, as used by backup import
func (tev *TimeEntryValidator) ValidateEntry(entry domain.TimeEntry) error {
	validationError := NewValidationError()

	if !tev.validator.IsNonEmptyString(entry.ID) {
		validationError.AddRequiredError("id")
	}
	if !tev.validator.IsNonEmptyString(entry.ProjectID) {
		validationError.AddRequiredError("project_id")
	}
	if entry.Start.IsZero() {
		validationError.AddRequiredError("start_time")
	}
	if entry.End != nil && !tev.validator.IsValidTimeRange(entry.Start, entry.End) {
		validationError.AddInvalidRangeError("time_range", nil, "end time must be after start time")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
