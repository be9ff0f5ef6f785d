package validation

import (
	"todo-app/internal/config"
)

// FieldTaskName is the field name reported for task name errors
const FieldTaskName = "name"

// MessageTaskNameRequired is shown when a task is submitted without a name
const MessageTaskNameRequired = "Task should have a name"

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using configured length limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTaskName validates a task name for creation. Any text that is not
// blank after trimming is accepted unless a maximum length is configured.
func (tv *TaskValidator) ValidateTaskName(name string) error {
	trimmedName := tv.validator.TrimAndValidateString(name)

	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError := NewValidationError()
		validationError.AddRequiredError(FieldTaskName, MessageTaskNameRequired, name)
		return validationError
	}

	if !tv.validator.IsValidTaskNameLength(trimmedName) {
		validationError := NewValidationError()
		validationError.AddInvalidLengthError(FieldTaskName, trimmedName,
			tv.validator.TaskNameMinLength(), tv.validator.TaskNameMaxLength())
		return validationError
	}

	return nil
}

// ValidateTaskLookupName checks a name used to select tasks for removal or
// completion. Only emptiness is rejected; any stored name may be matched.
func (tv *TaskValidator) ValidateTaskLookupName(name string) error {
	if !tv.validator.IsNonEmptyString(name) {
		validationError := NewValidationError()
		validationError.AddRequiredError(FieldTaskName, MessageTaskNameRequired, name)
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}
