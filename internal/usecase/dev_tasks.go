package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
)

// DevTools are the parsed tool commands without their per-run arguments.
type DevTools struct {
	Prettier ports.Command
	Isort    ports.Command
	Black    ports.Command
	Mypy     ports.Command
	Pylint   ports.Command
	Pytest   ports.Command
}

// DevTasks runs the repository's formatting, linting and test tools in a
// fixed order, stopping at the first tool that fails.
type DevTasks struct {
	runner   ports.CommandRunner
	expander ports.TargetExpander
	tools    DevTools
	root     string
	targets  []string

	reporter ports.Reporter
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger
}

type DevOption func(*DevTasks)

func WithDevReporter(r ports.Reporter) DevOption {
	return func(uc *DevTasks) {
		if r != nil {
			uc.reporter = r
		}
	}
}

// WithOutput streams tool output to the given writers.
func WithOutput(stdout, stderr io.Writer) DevOption {
	return func(uc *DevTasks) {
		uc.stdout = stdout
		uc.stderr = stderr
	}
}

func WithDevLogger(l *slog.Logger) DevOption {
	return func(uc *DevTasks) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewDevTasks(runner ports.CommandRunner, expander ports.TargetExpander, root string, tools DevTools, targets []string, opts ...DevOption) *DevTasks {
	uc := &DevTasks{
		runner:   runner,
		expander: expander,
		tools:    tools,
		root:     root,
		targets:  targets,
		reporter: ports.NopReporter{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Format runs prettier, isort and black over the whole repository.
func (uc *DevTasks) Format(ctx context.Context) error {
	steps := []struct {
		label string
		cmd   ports.Command
		args  []string
	}{
		{"Prettier", uc.tools.Prettier, []string{"--write", "."}},
		{"isort", uc.tools.Isort, []string{"."}},
		{"black", uc.tools.Black, []string{"."}},
	}
	for _, s := range steps {
		uc.reporter.Step(fmt.Sprintf("Formatting with %s...", s.label))
		if err := uc.run(ctx, "dev.format", s.cmd, s.args...); err != nil {
			return err
		}
		uc.reporter.Done(fmt.Sprintf("Formatting done (%s).", s.label))
	}
	uc.reporter.Done("All formatting complete.")
	return nil
}

// Lint formats first, then runs mypy and pylint on every lint target.
func (uc *DevTasks) Lint(ctx context.Context) error {
	if err := uc.Format(ctx); err != nil {
		return err
	}

	targets, err := uc.expander.Expand(uc.root, uc.targets)
	if err != nil {
		return err
	}

	for _, target := range targets {
		uc.reporter.Step(fmt.Sprintf("Linting %s with mypy...", target))
		if err := uc.run(ctx, "dev.lint", uc.tools.Mypy, target); err != nil {
			return err
		}
		uc.reporter.Done("mypy linting done.")

		uc.reporter.Step(fmt.Sprintf("Linting %s with pylint...", target))
		if err := uc.run(ctx, "dev.lint", uc.tools.Pylint, target); err != nil {
			return err
		}
		uc.reporter.Done("pylint linting done.")
	}
	uc.reporter.Done("All linting complete.")
	return nil
}

// Test lints, then runs pytest.
func (uc *DevTasks) Test(ctx context.Context) error {
	if err := uc.Lint(ctx); err != nil {
		return err
	}
	uc.reporter.Step("Running tests with pytest...")
	if err := uc.run(ctx, "dev.test", uc.tools.Pytest); err != nil {
		return err
	}
	uc.reporter.Done("All tests passed.")
	return nil
}

func (uc *DevTasks) run(ctx context.Context, op string, base ports.Command, extra ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cmd := ports.Command{
		Name:   base.Name,
		Args:   append(append([]string{}, base.Args...), extra...),
		Dir:    uc.root,
		Stdout: uc.stdout,
		Stderr: uc.stderr,
	}
	line := strings.TrimSpace(cmd.Name + " " + strings.Join(cmd.Args, " "))
	uc.logger.Info("dev.exec", "op", op, "cmd", line)

	res, err := uc.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		uc.logger.Error("dev.exec_failed", "op", op, "cmd", line, "exit_code", res.ExitCode)
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindExecution,
			Err: &domain.ToolError{
				Tool:     line,
				ExitCode: res.ExitCode,
				Stderr:   stderrUnlessStreamed(res.Stderr, uc.stderr),
			},
		}
	}
	return nil
}

// stderrUnlessStreamed drops output the user has already seen.
func stderrUnlessStreamed(stderr string, streamed io.Writer) string {
	if streamed != nil {
		return ""
	}
	return stderr
}
