package validation

import (
	"taskflow/internal/domain"
)

// CategoryValidator provides edge validation for category operations.
// It also enforces the presentation policy that default categories are
// not deletable; the store itself deletes unconditionally.
type CategoryValidator struct {
	validator *Validator
}

// NewCategoryValidator creates a new category validator with default
// limits.
func NewCategoryValidator() *CategoryValidator {
	return &CategoryValidator{
		validator: NewValidator(),
	}
}

// NewCategoryValidatorWith creates a new category validator sharing
// the given base validator.
func NewCategoryValidatorWith(v *Validator) *CategoryValidator {
	return &CategoryValidator{validator: v}
}

// ValidateName validates a category name for creation or rename.
func (cv *CategoryValidator) ValidateName(name string) error {
	validationError := NewValidationError()

	trimmed := cv.validator.TrimString(name)
	if !cv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("name")
		return validationError
	}

	if !cv.validator.IsValidStringLength(trimmed, 1, cv.validator.CategoryNameMaxLength()) {
		validationError.AddInvalidLengthError("name", trimmed, 1, cv.validator.CategoryNameMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateDeletable checks that a category may be deleted through the
// normal deletion path. Default categories are protected here, not in
// the store.
func (cv *CategoryValidator) ValidateDeletable(category domain.Category) error {
	if category.IsDefault {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("category", category.Name, "default categories cannot be deleted")
		return validationError
	}
	return nil
}

// GetValidName returns a cleaned category name if valid.
func (cv *CategoryValidator) GetValidName(name string) (string, error) {
	if err := cv.ValidateName(name); err != nil {
		return "", err
	}
	return cv.validator.TrimString(name), nil
}
