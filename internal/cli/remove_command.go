package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"todo-app/internal/api"
)

// RemoveCommand handles the remove command
type RemoveCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{
		api:          app.api,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute removes every task whose name matches the joined arguments exactly
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	if err := requireArgs("remove", args); err != nil {
		return err
	}

	name := strings.Join(args, " ")
	if err := c.api.RemoveTask(ctx, name); err != nil {
		return c.errorHandler.Handle("remove task", err)
	}

	fmt.Fprintf(c.out, "Removed task: %s\n", name)
	return nil
}
