package main

import (
	"fmt"
	"os"

	"todo-app/internal/cli"
	"todo-app/internal/errors"
	"todo-app/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the todo command line and returns the process exit code
func run(args []string) int {
	root := cli.NewRootCommand(cli.DefaultStoreOpener)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.NewErrorHandler().Message(err))
		if errors.ShouldLogError(err) {
			logging.Debugf("[%s] %v\n", errors.GetErrorCode(err), err)
		}
		return 1
	}
	return 0
}
