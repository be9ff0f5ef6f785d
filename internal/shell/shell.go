// Package shell implements the interactive menu-driven front end.
package shell

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"todo-app/internal/api"
)

// Options controls how the shell renders and where it reads and writes.
type Options struct {
	// AltScreen runs the shell in the terminal's alternate screen buffer
	AltScreen bool
	// Strikethrough overlays completed task names with a stroke
	Strikethrough bool

	Input  io.Reader
	Output io.Writer
}

// Run starts the shell and blocks until the user exits. It returns the error
// that ended the program, if any.
func Run(ctx context.Context, a api.API, opts Options) error {
	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	programOpts = append(programOpts, tea.WithContext(ctx))

	p := tea.NewProgram(New(ctx, a, opts), programOpts...)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
