package errors

import "fmt"

// ErrorType is the kind of failure an AppError reports. The kind decides the
// message shown to the user and whether the program must stop.
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeStorageUnavailable
	ErrorTypeStorageRead
	ErrorTypeStorageWrite
	ErrorTypeInvalidInput
	ErrorTypeTimeout
)

var typeNames = [...]string{
	ErrorTypeValidation:         "validation",
	ErrorTypeNotFound:           "not_found",
	ErrorTypeStorageUnavailable: "storage_unavailable",
	ErrorTypeStorageRead:        "storage_read",
	ErrorTypeStorageWrite:       "storage_write",
	ErrorTypeInvalidInput:       "invalid_input",
	ErrorTypeTimeout:            "timeout",
}

func (et ErrorType) String() string {
	if et < 0 || int(et) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[et]
}

// AppError is a failure tagged with its kind. Message describes what was
// being done; Cause keeps the underlying error for errors.Is and errors.As.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return e.Type.String() + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same kind and code
func (e *AppError) Is(target error) bool {
	other, ok := target.(*AppError)
	return ok && e.Type == other.Type && e.Code == other.Code
}

// IsType reports whether e is of kind t
func (e *AppError) IsType(t ErrorType) bool {
	return e.Type == t
}
