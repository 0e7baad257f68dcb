package validation

import (
	"taskflow/internal/domain"
)

// TaskValidator provides edge validation for task operations. The
// store itself performs no validation, so every form or command that
// creates or retitles a task must go through here first.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default limits.
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWith creates a new task validator sharing the given
// base validator.
func NewTaskValidatorWith(v *Validator) *TaskValidator {
	return &TaskValidator{validator: v}
}

// ValidateTitle validates a task title for creation or update.
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimString(title)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidStringLength(trimmed, 1, tv.validator.TitleMaxLength()) {
		validationError.AddInvalidLengthError("title", trimmed, 1, tv.validator.TitleMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateInput validates a full task creation input.
func (tv *TaskValidator) ValidateInput(input domain.TaskInput) error {
	validationError := NewValidationError()

	if titleErr := tv.ValidateTitle(input.Title); titleErr != nil {
		if titleValidationErr, ok := titleErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, titleValidationErr.Errors...)
		}
	}

	if input.Priority != "" && !input.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", input.Priority, "must be High, Medium, or Low")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidTitle returns a cleaned task title if valid.
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimString(title), nil
}
