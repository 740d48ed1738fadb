package ports

import (
	"context"
	"io"
)

// Command is a single external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string

	// Stdout and Stderr receive the process output as it is produced.
	// The output is captured into CommandResult either way.
	Stdout io.Writer
	Stderr io.Writer
}

// CommandResult is what a finished process left behind.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// CommandRunner executes external processes. A non-nil error means the
// process could not be run at all; a process that ran and failed reports a
// non-zero ExitCode with a nil error.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (CommandResult, error)
}
