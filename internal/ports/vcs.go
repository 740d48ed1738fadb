package ports

import "context"

// VersionControl is the subset of git used by the release flow.
type VersionControl interface {
	EnsureWorkingCopy(ctx context.Context) error
	CurrentBranch(ctx context.Context) (string, error)
	// StatusLines returns the lines of `git status --porcelain --branch`.
	StatusLines(ctx context.Context) ([]string, error)
	Add(ctx context.Context, paths ...string) error
	Commit(ctx context.Context, message string) error
	Tag(ctx context.Context, name string) error
}
