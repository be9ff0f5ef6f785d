package cli

import (
	stderrors "errors"

	"todo-app/internal/errors"
	"todo-app/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// commandError carries the message printed for a failed command while
// keeping the original error reachable through errors.Is and errors.As.
type commandError struct {
	op  string
	msg string
	err error
}

func (e *commandError) Error() string {
	if e.op == "" {
		return e.msg
	}
	return "failed to " + e.op + ": " + e.msg
}

func (e *commandError) Unwrap() error {
	return e.err
}

// Handle prefixes the user-facing message of err with the failed operation
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	return &commandError{op: operation, msg: eh.Message(err), err: err}
}

// HandleSimple is Handle without the operation prefix
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	return &commandError{msg: eh.Message(err), err: err}
}

// Message renders err for the terminal. Errors already rendered by Handle are
// shown unchanged; tagged application errors use their kind's message and
// anything else is shown as is.
func (eh *ErrorHandler) Message(err error) string {
	var handled *commandError
	if stderrors.As(err, &handled) {
		return handled.Error()
	}
	if errors.IsAppError(err) {
		return errors.GetUserMessage(err)
	}
	if ve, ok := validation.AsValidationError(err); ok {
		return ve.GetUserFriendlyMessage()
	}
	return err.Error()
}
