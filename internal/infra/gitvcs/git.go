// Package gitvcs drives the git CLI for the release flow.
package gitvcs

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/vcs"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
)

type Git struct {
	root   string
	runner ports.CommandRunner
}

func New(root string, runner ports.CommandRunner) *Git {
	return &Git{root: root, runner: runner}
}

var _ ports.VersionControl = (*Git)(nil)

// EnsureWorkingCopy fails unless root is the top of a git working copy.
func EnsureWorkingCopy(root string) error {
	t, err := vcs.DetectVcsFromFS(root)
	if err != nil {
		return &domain.OpError{
			Op:   "gitvcs.detect",
			Kind: domain.KindPrecondition,
			Path: root,
			Err:  fmt.Errorf("not a version-controlled directory: %w", err),
		}
	}
	if t != vcs.Git {
		return &domain.OpError{
			Op:   "gitvcs.detect",
			Kind: domain.KindPrecondition,
			Path: root,
			Err:  fmt.Errorf("expected a git repository, found %s", t),
		}
	}
	return nil
}

// EnsureWorkingCopy fails unless the root lies inside a git working copy.
// The root may be a subdirectory of the repository; in that case git itself
// is asked, since the .git directory lives further up.
func (g *Git) EnsureWorkingCopy(ctx context.Context) error {
	detectErr := EnsureWorkingCopy(g.root)
	if detectErr == nil {
		return nil
	}
	if t, err := vcs.DetectVcsFromFS(g.root); err == nil && t != vcs.Git {
		return detectErr
	}

	res, err := g.runner.Run(ctx, ports.Command{
		Name: "git",
		Args: []string{"rev-parse", "--is-inside-work-tree"},
		Dir:  g.root,
	})
	if err != nil {
		return err
	}
	if res.ExitCode == 0 && strings.TrimSpace(res.Stdout) == "true" {
		return nil
	}
	return detectErr
}

func (g *Git) CurrentBranch(ctx context.Context) (string, error) {
	out, err := g.output(ctx, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (g *Git) StatusLines(ctx context.Context) ([]string, error) {
	out, err := g.output(ctx, "status", "--porcelain", "--branch")
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSpace(out), "\n"), nil
}

func (g *Git) Add(ctx context.Context, paths ...string) error {
	for _, p := range paths {
		if _, err := g.output(ctx, "add", p); err != nil {
			return err
		}
	}
	return nil
}

func (g *Git) Commit(ctx context.Context, message string) error {
	_, err := g.output(ctx, "commit", "-m", message)
	return err
}

func (g *Git) Tag(ctx context.Context, name string) error {
	_, err := g.output(ctx, "tag", name)
	return err
}

func (g *Git) output(ctx context.Context, args ...string) (string, error) {
	res, err := g.runner.Run(ctx, ports.Command{Name: "git", Args: args, Dir: g.root})
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", &domain.OpError{
			Op:   "gitvcs." + args[0],
			Kind: domain.KindExecution,
			Path: g.root,
			Err:  &domain.ToolError{Tool: "git " + args[0], ExitCode: res.ExitCode, Stderr: strings.TrimSpace(res.Stderr)},
		}
	}
	return res.Stdout, nil
}
