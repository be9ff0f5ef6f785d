package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"todo-app/internal/api"
	"todo-app/internal/errors"
	"todo-app/internal/export"
)

// ExportCommand handles the export command
type ExportCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		api:          app.api,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// exportOptions holds the parsed key=value arguments of the export command
type exportOptions struct {
	format string
	output string
}

// Execute runs the export command. Arguments are format=<csv|yaml|pdf> and
// an optional output=<file>; without a file the export goes to stdout.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	opts, err := parseExportArgs(args)
	if err != nil {
		return err
	}

	exporter, err := export.NewExporter(opts.format)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	tasks, err := c.api.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}

	if opts.output == "" {
		return exporter.Export(c.out, tasks)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return c.errorHandler.Handle("export tasks",
			errors.WrapError(err, errors.ErrorTypeInvalidInput, "cannot create "+opts.output))
	}
	if err := exporter.Export(f, tasks); err != nil {
		f.Close()
		return fmt.Errorf("failed to export tasks: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to export tasks: %w", err)
	}

	fmt.Fprintf(c.out, "Exported %d task(s) to %s\n", len(tasks), opts.output)
	return nil
}

func parseExportArgs(args []string) (exportOptions, error) {
	var opts exportOptions
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return opts, errors.NewInvalidInputError("argument", fmt.Sprintf("%q: expected key=value", arg))
		}
		switch key {
		case "format":
			opts.format = value
		case "output":
			opts.output = value
		default:
			return opts, errors.NewInvalidInputError("argument", fmt.Sprintf("%q: unknown export option", arg))
		}
	}
	if opts.format == "" {
		return opts, errors.NewInvalidInputError("command",
			"usage: todo export --format "+strings.Join(export.Formats, "|"))
	}
	return opts, nil
}
