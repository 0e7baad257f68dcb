package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
	}
}

// NewNotFoundError creates a new not found error for the given
// resource and identifier.
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
	}
}

// NewStorageError creates a new storage error for a failed
// persistence operation.
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
	}
}

// NewInvalidInputError creates a new invalid input error for a field.
func NewInvalidInputError(field string, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
	}
}

// NewUnauthenticatedError creates a new unauthenticated error for an
// operation that requires an active session.
func NewUnauthenticatedError(operation string) *AppError {
	return &AppError{
		Type:    ErrorTypeUnauthenticated,
		Message: fmt.Sprintf("not signed in: %s requires an active session", operation),
		Code:    "UNAUTHENTICATED",
	}
}

// IsAppError checks if the error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type.
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly message for the error.
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeStorage:
			return "A storage error occurred. Please try again."
		default:
			return appErr.Message
		}
	}
	return err.Error()
}
