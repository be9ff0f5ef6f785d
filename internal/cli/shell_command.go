package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"todo-app/internal/api"
	"todo-app/internal/config"
	"todo-app/internal/logging"
	"todo-app/internal/shell"
)

// ShellCommand starts the interactive menu
type ShellCommand struct {
	api    api.API
	config *config.Config
	in     io.Reader
	out    io.Writer

	// run is replaced in tests so no terminal is needed
	run func(ctx context.Context, a api.API, opts shell.Options) error
}

// NewShellCommand creates a new shell command handler
func NewShellCommand(app *App) *ShellCommand {
	return &ShellCommand{
		api:    app.api,
		config: app.config,
		in:     app.in,
		out:    app.out,
		run:    shell.Run,
	}
}

// Execute runs the shell until the user exits
func (c *ShellCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("shell takes no arguments")
	}

	restore, err := c.redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	logging.Debugln("starting shell")
	return c.run(ctx, c.api, shell.Options{
		AltScreen:     c.config.Shell.AltScreen,
		Strikethrough: c.config.Display.Strikethrough,
		Input:         c.in,
		Output:        c.out,
	})
}

// redirectLogs sends debug output to the configured log file while the
// shell owns the terminal. Without a log file debug output is dropped.
func (c *ShellCommand) redirectLogs() (func(), error) {
	path := c.config.Application.LogFile
	if path == "" {
		previous := logging.SetOutput(io.Discard)
		return func() { logging.SetOutput(previous) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	previous := logging.SetOutput(f)
	return func() {
		logging.SetOutput(previous)
		f.Close()
	}, nil
}
