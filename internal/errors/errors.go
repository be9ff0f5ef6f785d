package errors

import (
	"context"
	"errors"
	"fmt"
)

// NewValidationError reports input that broke a validation rule. A cause
// with a GetUserFriendlyMessage method supplies the text shown to the user.
func NewValidationError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message, Code: "VALIDATION_FAILED", Cause: cause}
}

func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
	}
}

// NewStorageUnavailableError reports that the task store could not be opened
// or its schema could not be applied.
func NewStorageUnavailableError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorageUnavailable,
		Message: "storage unavailable: " + operation,
		Code:    "STORAGE_UNAVAILABLE",
		Cause:   cause,
	}
}

// NewStorageReadError creates an error for a failed read against the store.
// A deadline or cancellation in the cause is reported as a timeout instead.
func NewStorageReadError(operation string, cause error) *AppError {
	if isTimeout(cause) {
		return NewTimeoutError(operation, cause)
	}
	return &AppError{
		Type:    ErrorTypeStorageRead,
		Message: "storage read failed: " + operation,
		Code:    "STORAGE_READ_ERROR",
		Cause:   cause,
	}
}

// NewStorageWriteError is the write side of NewStorageReadError
func NewStorageWriteError(operation string, cause error) *AppError {
	if isTimeout(cause) {
		return NewTimeoutError(operation, cause)
	}
	return &AppError{
		Type:    ErrorTypeStorageWrite,
		Message: "storage write failed: " + operation,
		Code:    "STORAGE_WRITE_ERROR",
		Cause:   cause,
	}
}

// NewInvalidInputError reports a malformed command line argument
func NewInvalidInputError(field string, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
	}
}

func NewTimeoutError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeTimeout,
		Message: "operation timed out: " + operation,
		Code:    "TIMEOUT",
		Cause:   cause,
	}
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
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

// IsFatal reports whether the error should terminate the application.
// Only a store that cannot be opened is fatal; every other failure is
// reported and the caller carries on.
func IsFatal(err error) bool {
	return IsErrorType(err, ErrorTypeStorageUnavailable)
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation:
			if appErr.Cause != nil {
				if friendly, ok := appErr.Cause.(interface{ GetUserFriendlyMessage() string }); ok {
					return friendly.GetUserFriendlyMessage()
				}
			}
			return appErr.Message
		case ErrorTypeNotFound:
			return appErr.Message
		case ErrorTypeInvalidInput:
			return appErr.Message
		case ErrorTypeStorageUnavailable:
			return "The task store could not be opened."
		case ErrorTypeStorageRead:
			return "Could not read tasks. Please try again."
		case ErrorTypeStorageWrite:
			return "Could not save changes. Please try again."
		case ErrorTypeTimeout:
			return "The operation timed out. Please try again."
		default:
			return "An unexpected error occurred. Please try again."
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

// ShouldLogError reports whether err is worth a debug log entry. Mistakes in
// user input are not; failures of the program or the store are.
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
			return false
		default:
			return true
		}
	}
	return true
}
