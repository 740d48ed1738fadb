package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Masterminds/semver/v3"

	"github.com/akita-international-university/ir-color-guide/internal/app/template"
	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
)

type BumpResult struct {
	Previous string
	Version  string
	Tag      string
	Files    []string
}

// BumpVersion increments the project version, commits the change and tags
// the commit. Nothing is pushed.
type BumpVersion struct {
	vcs     ports.VersionControl
	store   ports.VersionStore
	release domain.ReleaseConfig
	logger  *slog.Logger
}

type BumpOption func(*BumpVersion)

func WithBumpLogger(l *slog.Logger) BumpOption {
	return func(uc *BumpVersion) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewBumpVersion(vcs ports.VersionControl, store ports.VersionStore, release domain.ReleaseConfig, opts ...BumpOption) *BumpVersion {
	uc := &BumpVersion{
		vcs:     vcs,
		store:   store,
		release: release,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *BumpVersion) Execute(ctx context.Context, kind string) (BumpResult, error) {
	var res BumpResult

	k, err := domain.ParseBumpKind(kind)
	if err != nil {
		return res, err
	}

	if err := uc.vcs.EnsureWorkingCopy(ctx); err != nil {
		return res, err
	}
	if err := uc.CheckBranch(ctx); err != nil {
		return res, err
	}

	current, err := uc.store.Current()
	if err != nil {
		return res, err
	}
	next, err := NextVersion(current, k)
	if err != nil {
		return res, err
	}
	res.Previous, res.Version = current, next

	files, err := uc.store.Update(current, next)
	if err != nil {
		return res, err
	}
	res.Files = files
	uc.logger.Info("bump.updated", "from", current, "to", next, "files", files)

	vars := map[string]string{"version": next}
	message, err := template.RenderString(uc.release.CommitMessage, vars)
	if err != nil {
		return res, err
	}
	tag, err := template.RenderString(uc.release.Tag, vars)
	if err != nil {
		return res, err
	}

	if err := uc.vcs.Add(ctx, files...); err != nil {
		return res, err
	}
	if err := uc.vcs.Commit(ctx, message); err != nil {
		return res, err
	}
	if err := uc.vcs.Tag(ctx, tag); err != nil {
		return res, err
	}
	res.Tag = tag
	uc.logger.Info("bump.tagged", "tag", tag)

	return res, nil
}

// CheckBranch requires the release branch to be checked out, clean and in
// sync with its remote counterpart.
func (uc *BumpVersion) CheckBranch(ctx context.Context) error {
	branch := uc.release.Branch

	current, err := uc.vcs.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if current != branch {
		return &domain.OpError{
			Op:   "bump.check_branch",
			Kind: domain.KindPrecondition,
			Err: fmt.Errorf("The current Git branch is not '%s': %s\n"+
				"Please switch to the '%s' branch before running this.\n"+
				"Aborting version bump.", branch, current, branch),
		}
	}

	lines, err := uc.vcs.StatusLines(ctx)
	if err != nil {
		return err
	}
	want := fmt.Sprintf("## %s...%s/%s", branch, uc.release.Remote, branch)
	if len(lines) != 1 || lines[0] != want {
		return &domain.OpError{
			Op:   "bump.check_branch",
			Kind: domain.KindPrecondition,
			Err: fmt.Errorf("There are uncommitted or unpushed changes.\n"+
				"Please ensure the '%s' branch is clean before running this.\n"+
				"Aborting version bump.", branch),
		}
	}
	return nil
}

// NextVersion increments current by kind following semantic versioning.
func NextVersion(current string, kind domain.BumpKind) (string, error) {
	v, err := semver.NewVersion(current)
	if err != nil {
		return "", &domain.OpError{
			Op:   "bump.parse_version",
			Kind: domain.KindParse,
			Err:  fmt.Errorf("current version %q: %w", current, err),
		}
	}

	var next semver.Version
	switch kind {
	case domain.BumpMajor:
		next = v.IncMajor()
	case domain.BumpMinor:
		next = v.IncMinor()
	default:
		next = v.IncPatch()
	}
	return next.String(), nil
}

// CompletionMessage is printed once the bump commit and tag exist.
func CompletionMessage(version string) string {
	return fmt.Sprintf("Bumped version to %s.\n"+
		"Don't forget to push the changes and the tag to the remote repository by running:\n\n"+
		"\tgit push\n"+
		"\tgit push --tags", version)
}
