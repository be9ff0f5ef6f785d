package cli

import (
	"context"
	"io"

	"todo-app/internal/api"
	"todo-app/internal/config"
	"todo-app/internal/errors"
)

// App represents the main CLI application
type App struct {
	api      api.API
	config   *config.Config
	in       io.Reader
	out      io.Writer
	registry *CommandRegistry
}

// NewAppWithConfig creates a new CLI application instance with dependency injection
func NewAppWithConfig(api api.API, cfg *config.Config, in io.Reader, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		api:    api,
		config: cfg,
		in:     in,
		out:    out,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the CLI application with the given arguments. With no
// arguments the interactive shell is started.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.registry.Execute(ctx, "shell", nil)
	}

	commandName := args[0]
	commandArgs := args[1:]

	return a.registry.Execute(ctx, commandName, commandArgs)
}

// requireArgs reports a usage error when a command that takes a task name got none
func requireArgs(command string, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "usage: todo "+command+" <task name>")
	}
	return nil
}
