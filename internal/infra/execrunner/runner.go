// Package execrunner runs external tools as child processes.
package execrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
	"github.com/mattn/go-shellwords"
)

type Runner struct {
	// Env overrides or extends the inherited environment.
	Env map[string]string

	logger *slog.Logger
}

type Option func(*Runner)

func WithEnv(env map[string]string) Option {
	return func(r *Runner) { r.Env = env }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

func New(opts ...Option) *Runner {
	r := &Runner{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.CommandRunner = (*Runner)(nil)

// Run starts the command, waits for it and returns its exit code together
// with everything it wrote to stdout and stderr. There is no timeout other
// than ctx.
func (r *Runner) Run(ctx context.Context, cmd ports.Command) (ports.CommandResult, error) {
	var stdout, stderr bytes.Buffer

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = os.Environ()
	for k, v := range r.Env {
		c.Env = append(c.Env, k+"="+v)
	}
	c.Stdout = tee(&stdout, cmd.Stdout)
	c.Stderr = tee(&stderr, cmd.Stderr)

	r.logger.Debug("exec.start", "cmd", cmd.Name, "args", cmd.Args, "dir", cmd.Dir)

	err := c.Run()
	res := ports.CommandResult{
		ExitCode: ExitStatus(err),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}

	if err != nil && !CmdRan(err) {
		r.logger.Debug("exec.not_run", "cmd", cmd.Name, "error", err)
		return res, &domain.OpError{
			Op:   "exec.run",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("failed to run %q: %w", commandLine(cmd), err),
		}
	}

	r.logger.Debug("exec.done", "cmd", cmd.Name, "exit_code", res.ExitCode)
	return res, nil
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}

func commandLine(cmd ports.Command) string {
	return strings.TrimSpace(cmd.Name + " " + strings.Join(cmd.Args, " "))
}

// CmdRan reports whether err came from a process that actually ran, even if
// it exited with a non-zero code. It is false when the command could not be
// found or started.
func CmdRan(err error) bool {
	if err == nil {
		return true
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.Exited()
	}
	return false
}

type exitStatus interface {
	ExitStatus() int
}

// ExitStatus returns the exit status of err: 0 for nil, the process status
// for an exec.ExitError and 1 for anything else.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if ex, ok := ee.Sys().(exitStatus); ok {
			return ex.ExitStatus()
		}
		return ee.ExitCode()
	}
	return 1
}

// ParseCommandLine splits a configured tool command such as
// "poetry run mypy" into the program and its leading arguments.
func ParseCommandLine(line string) (string, []string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", nil, &domain.OpError{
			Op:   "exec.parse",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("command %q: %w", line, err),
		}
	}
	if len(args) == 0 {
		return "", nil, &domain.OpError{
			Op:   "exec.parse",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("command %q was not parsed correctly into content", line),
		}
	}
	return args[0], args[1:], nil
}

// NewCommand builds a Command from a configured tool line plus extra args.
func NewCommand(line string, extra ...string) (ports.Command, error) {
	name, args, err := ParseCommandLine(line)
	if err != nil {
		return ports.Command{}, err
	}
	return ports.Command{Name: name, Args: append(args, extra...)}, nil
}
