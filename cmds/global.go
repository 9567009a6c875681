package cmds

import (
	"fmt"
	"io"
	"os"
)

// GlobalExecutor holds the commands defined by package init functions.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args on GlobalExecutor and exits the process on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}
}

func PrintUsage(w io.Writer) {
	GlobalExecutor.PrintUsage(w)
}
