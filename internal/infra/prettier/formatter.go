// Package prettier formats generated artifacts with the Prettier CLI.
package prettier

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/infra/execrunner"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
)

const DefaultCommand = "npx prettier"

type Formatter struct {
	runner  ports.CommandRunner
	command string
	logger  *slog.Logger
}

type Option func(*Formatter)

// WithCommand overrides the command line used to start Prettier.
func WithCommand(line string) Option {
	return func(f *Formatter) {
		if line != "" {
			f.command = line
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Formatter) {
		if l != nil {
			f.logger = l
		}
	}
}

func New(runner ports.CommandRunner, opts ...Option) *Formatter {
	f := &Formatter{
		runner:  runner,
		command: DefaultCommand,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.Formatter = (*Formatter)(nil)

// Format runs `prettier <abs path> --write`. A non-zero exit becomes a
// KindFormatterFailed error carrying the captured stderr verbatim.
func (f *Formatter) Format(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return &domain.OpError{
			Op:   "prettier.format",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	cmd, err := execrunner.NewCommand(f.command, abs, "--write")
	if err != nil {
		return err
	}

	res, err := f.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		f.logger.Error("prettier.failed", "path", abs, "exit_code", res.ExitCode, "stderr", res.Stderr)
		return &domain.OpError{
			Op:   "prettier.format",
			Kind: domain.KindFormatterFailed,
			Path: path,
			Err:  &domain.ToolError{Tool: "prettier", ExitCode: res.ExitCode, Stderr: res.Stderr},
		}
	}

	f.logger.Info("prettier.done", "path", abs)
	return nil
}
