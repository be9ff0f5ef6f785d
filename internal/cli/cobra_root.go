package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"todo-app/internal/api"
	"todo-app/internal/config"
	"todo-app/internal/logging"
)

// StoreOpener opens the task store described by cfg and returns the API on
// top of it together with the handle that closes the store
type StoreOpener func(cfg *config.Config) (api.API, io.Closer, error)

// DefaultStoreOpener opens the configured SQLite store
func DefaultStoreOpener(cfg *config.Config) (api.API, io.Closer, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, nil, err
	}
	return api.NewWithConfig(repo, cfg), repo, nil
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	open   StoreOpener
	api    api.API
	closer io.Closer
	config *config.Config

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(open StoreOpener) *RootCommand {
	if open == nil {
		open = DefaultStoreOpener
	}
	root := &RootCommand{
		open:   open,
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A terminal todo list manager",
		Long: `Todo is a terminal application for keeping a list of tasks.

Run without arguments to open the interactive menu, or use the
subcommands below from scripts.

EXAMPLES:
  todo                                     # Open the interactive menu
  todo add "Buy milk"                      # Add a task
  todo list                                # List tasks with their status
  todo complete "Buy milk"                 # Mark every task named "Buy milk" as complete
  todo remove "Buy milk"                   # Remove every task named "Buy milk"
  todo export --format csv > tasks.csv     # Export to CSV
  todo export --format pdf --output t.pdf  # Export to PDF

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > .env file > todo.yaml > defaults

  Database Configuration:
    TODO_DB_DIR                            Database directory (default: data)
    TODO_DB_FILENAME                       Database filename (default: tasks.db)
    TODO_DB_DRIVER                         sqlite (pure Go) or sqlite3 (cgo) (default: sqlite)
    TODO_DB_QUERY_TIMEOUT                  Query timeout (default: 10s)
    TODO_DB_WRITE_TIMEOUT                  Write timeout (default: 5s)
    TODO_DB_DIR_PERMISSIONS                Octal permissions for the directory (default: 0755)

  Validation Configuration:
    TODO_VALIDATION_TASK_NAME_MIN          Min task name length (default: 1)
    TODO_VALIDATION_TASK_NAME_MAX          Max task name length, 0 for none (default: 0)

  Display Configuration:
    TODO_DISPLAY_STRIKETHROUGH             Strike through completed tasks (default: true)
    TODO_SHELL_ALT_SCREEN                  Use the alternate screen (default: true)

  Application Configuration:
    TODO_APP_TIMEOUT                       Timeout for non-interactive commands (default: 60s)
    TODO_APP_VERBOSE                       Enable verbose output (default: false)
    TODO_APP_LOG_FILE                      Debug log file used while the menu is open;
                                           without it debug output is off in the menu
    TODO_CONFIG                            Path to a todo.yaml config file

GETTING HELP:
  todo [command] --help                    # Get help for any specific command
  todo completion bash                     # Generate bash completion script`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.loadConfig(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.dispatch(context.Background(), "shell", args)
		},
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// SetIO replaces the streams used by commands
func (r *RootCommand) SetIO(in io.Reader, out, errOut io.Writer) {
	r.in = in
	r.out = out
	r.errOut = errOut
	r.cmd.SetIn(in)
	r.cmd.SetOut(out)
	r.cmd.SetErr(errOut)
}

// SetArgs sets the arguments parsed by Execute
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Config returns the configuration loaded for the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// Execute runs the root command and closes the store afterwards
func (r *RootCommand) Execute() error {
	err := r.cmd.Execute()
	if r.closer != nil {
		if closeErr := r.closer.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		r.closer = nil
		r.api = nil
	}
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Path to a todo.yaml config file (overrides TODO_CONFIG)")

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")
	flags.String("db-driver", "", "SQLite driver, sqlite or sqlite3 (overrides TODO_DB_DRIVER)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TODO_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TODO_DB_WRITE_TIMEOUT)")

	// Validation configuration
	flags.Int("task-name-max-length", 0, "Maximum task name length, 0 for none (overrides TODO_VALIDATION_TASK_NAME_MAX)")

	// Shell configuration
	flags.Bool("no-alt-screen", false, "Draw the menu inline instead of in the alternate screen")

	// Application configuration
	flags.Duration("app-timeout", 0, "Timeout for non-interactive commands (overrides TODO_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TODO_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [task name]",
		Short: "Add a new task",
		Long:  "Add a new open task. All arguments are joined into a single task name.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout("add", args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List every task in the order it was added, with its completion status.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout("list", args)
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove [task name]",
		Short: "Remove tasks by name",
		Long: `Remove every task whose name matches exactly.

Matching is case-sensitive. Removing a name that does not exist is not an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout("remove", args)
		},
	}

	completeCmd := &cobra.Command{
		Use:   "complete [task name]",
		Short: "Mark tasks as complete by name",
		Long: `Mark every task whose name matches exactly as complete.

Matching is case-sensitive. Completed tasks stay completed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout("complete", args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export --format csv|yaml|pdf",
		Short: "Export tasks",
		Long: `Export every task in the specified format.

Supported formats:
  csv  - Comma-separated values
  yaml - YAML document with a tasks list
  pdf  - Printable table

Examples:
  todo export --format csv > tasks.csv
  todo export --format yaml --output tasks.yaml
  todo export --format pdf --output tasks.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			exportArgs := []string{"format=" + format}
			if output != "" {
				exportArgs = append(exportArgs, "output="+output)
			}
			return r.runWithTimeout("export", exportArgs)
		},
	}
	exportCmd.Flags().StringP("format", "f", "csv", "Export format: csv, yaml or pdf")
	exportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		removeCmd,
		completeCmd,
		exportCmd,
	)
}

// runWithTimeout runs a non-interactive command bounded by the application timeout
func (r *RootCommand) runWithTimeout(name string, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
	defer cancel()
	return r.dispatch(ctx, name, args)
}

// dispatch opens the store on first use and runs the named command through the registry
func (r *RootCommand) dispatch(ctx context.Context, name string, args []string) error {
	if err := r.openStore(); err != nil {
		return err
	}
	app := NewAppWithConfig(r.api, r.config, r.in, r.out)
	return app.Run(ctx, append([]string{name}, args...))
}

func (r *RootCommand) openStore() error {
	if r.api != nil {
		return nil
	}
	a, closer, err := r.open(r.config)
	if err != nil {
		return err
	}
	r.api = a
	r.closer = closer
	return nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second // Default timeout
}

// loadConfig builds the configuration from file, environment and the flags
// that were set on the command line
func (r *RootCommand) loadConfig(flags *pflag.FlagSet) error {
	loader := config.NewLoader()
	if path, _ := flags.GetString("config"); path != "" {
		loader = loader.WithConfigFile(path)
	}

	cfg, err := loader.LoadWithOverrides(overridesFromFlags(flags))
	if err != nil {
		return err
	}

	r.config = cfg
	logging.SetVerbose(cfg.Application.Verbose)
	if used := loader.ConfigFileUsed(); used != "" {
		logging.Debugf("using config file %s\n", used)
	}
	return nil
}

// overridesFromFlags collects the flags the user actually set
func overridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("db-driver") {
		v, _ := flags.GetString("db-driver")
		overrides.DBDriver = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}
	if flags.Changed("db-write-timeout") {
		v, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = &v
	}
	if flags.Changed("task-name-max-length") {
		v, _ := flags.GetInt("task-name-max-length")
		overrides.TaskNameMaxLength = &v
	}
	if noAlt, _ := flags.GetBool("no-alt-screen"); noAlt {
		alt := false
		overrides.AltScreen = &alt
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		overrides.Verbose = &verbose
	}

	return overrides
}
