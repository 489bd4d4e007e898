package validation

// NameValidator validates the display names of projects and customers
type NameValidator struct {
	validator *Validator
}

// NewNameValidator creates a new name validator
func NewNameValidator() *NameValidator {
	return &NameValidator{
		validator: NewValidator(),
	}
}

// ValidateName validates a display name for creation or update
func (nv *NameValidator) ValidateName(field, name string) error {
	validationError := NewValidationError()

	trimmed := nv.validator.TrimAndValidateString(name)
	if !nv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError(field)
		return validationError
	}

	if !nv.validator.IsValidNameLength(trimmed) {
		validationError.AddInvalidLengthError(field, trimmed, nameMinLength, nameMaxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidName returns a cleaned name if valid
func (nv *NameValidator) GetValidName(field, name string) (string, error) {
	if err := nv.ValidateName(field, name); err != nil {
		return "", err
	}
	return nv.validator.TrimAndValidateString(name), nil
}
