package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"todo-app/internal/api"
)

// AddCommand handles the add command
type AddCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		api:          app.api,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command. All arguments are joined into one task name.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if err := requireArgs("add", args); err != nil {
		return err
	}

	task, err := c.api.AddTask(ctx, strings.Join(args, " "))
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.out, "Added task: %s\n", task.Name)
	return nil
}
