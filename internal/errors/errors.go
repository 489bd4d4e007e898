package errors

import (
	"errors"
	"fmt"
	"time"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewInvalidStateError creates an error for a timer operation called out of order
func NewInvalidStateError(operation string, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidState,
		Message: fmt.Sprintf("cannot %s: %s", operation, reason),
		Code:    "INVALID_STATE",
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewProjectEndedError creates an error for starting a timer against an expired project
func NewProjectEndedError(projectID string, endDate time.Time) *AppError {
	return &AppError{
		Type:    ErrorTypeProjectEnded,
		Message: fmt.Sprintf("project %s ended on %s", projectID, endDate.Format("2006-01-02")),
		Code:    "PROJECT_ENDED",
		Context: map[string]interface{}{
			"project_id": projectID,
			"end_date":   endDate,
		},
	}
}

// NewInvalidIntervalError creates an error for an edit producing end <= start
func NewInvalidIntervalError(start, end time.Time) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInterval,
		Message: "end time must be after start time",
		Code:    "INVALID_INTERVAL",
		Context: map[string]interface{}{
			"start": start,
			"end":   end,
		},
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewNothingToUndoError creates an error for undo after the window expired
// or with an empty undo buffer
func NewNothingToUndoError() *AppError {
	return &AppError{
		Type:    ErrorTypeNothingToUndo,
		Message: "nothing to undo",
		Code:    "NOTHING_TO_UNDO",
		Context: make(map[string]interface{}),
	}
}

// NewMalformedImportError creates an error for an unusable import payload
func NewMalformedImportError(reason string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeMalformedImport,
		Message: fmt.Sprintf("import payload is not usable: %s", reason),
		Code:    "MALFORMED_IMPORT",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    "DATABASE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeDatabase:
			return "A database error occurred. Please try again."
		default:
			return appErr.Message
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeDatabase:
			return true
		default:
			// User-facing errors: reported, not logged
			return false
		}
	}
	return true
}
