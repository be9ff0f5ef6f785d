package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"todo-app/internal/api"
)

// CompleteCommand handles the complete command
type CompleteCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{
		api:          app.api,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute marks every task whose name matches the joined arguments as complete
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	if err := requireArgs("complete", args); err != nil {
		return err
	}

	name := strings.Join(args, " ")
	if err := c.api.CompleteTask(ctx, name); err != nil {
		return c.errorHandler.Handle("complete task", err)
	}

	fmt.Fprintf(c.out, "Completed task: %s\n", name)
	return nil
}
