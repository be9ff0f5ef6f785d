package cli

import (
	"context"
	"fmt"
	"io"

	"todo-app/internal/api"
	"todo-app/internal/config"
	"todo-app/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	api          api.API
	display      config.DisplayConfig
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		api:          app.api,
		display:      app.config.Display,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints every task, numbered from 1, in insertion order
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.api.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}
	c.printTasks(tasks)
	return nil
}

// printTasks prints one line per task in the format:
// N. [x] name
func (c *ListCommand) printTasks(tasks []*domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(c.out, "No tasks!")
		return
	}

	for i, task := range tasks {
		marker := c.display.OpenMarker
		if task.Completed {
			marker = c.display.CompletedMarker
		}
		fmt.Fprintf(c.out, "%d. %s %s\n", i+1, marker, task.Name)
	}
}
