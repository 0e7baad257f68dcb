package errors

import (
	"fmt"
)

// ErrorType represents the category of an application error.
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeStorage
	ErrorTypeInvalidInput
	ErrorTypeUnauthenticated
)

// String returns the string representation of the error type.
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeStorage:
		return "storage"
	case ErrorTypeInvalidInput:
		return "invalid_input"
	case ErrorTypeUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// AppError represents a structured application error with a category,
// an optional underlying cause, and a stable machine-readable code.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

// Unwrap returns the underlying cause for error chain inspection.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches against another AppError by type and code.
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType reports whether the error belongs to the given category.
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}
