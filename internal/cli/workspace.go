package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/infra/execrunner"
	"github.com/akita-international-university/ir-color-guide/internal/infra/logger"
	"github.com/akita-international-university/ir-color-guide/internal/infra/workspacefinder"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
	"github.com/akita-international-university/ir-color-guide/internal/usecase"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	runner ports.CommandRunner
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:   root,
		cfg:    cfg,
		runner: execrunner.New(execrunner.WithLogger(logger.ForComponent("exec"))),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("repository root not found from %q (tip: run `irpal init`): %w", wd, err)
	}
	return root, nil
}

// path resolves a configured path against the repository root.
func (ws *workspaceCtx) path(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(ws.root, filepath.FromSlash(p))
}

func (ws *workspaceCtx) artifactPaths() usecase.ArtifactPaths {
	return usecase.ArtifactPaths{
		Source:  ws.path(ws.cfg.Paths.Source),
		Tableau: ws.path(ws.cfg.Paths.Tableau),
		RScript: ws.path(ws.cfg.Paths.RScript),
	}
}

func (ws *workspaceCtx) devTools() (usecase.DevTools, error) {
	var tools usecase.DevTools
	t := ws.cfg.Tools

	for _, l := range []struct {
		dst  *ports.Command
		line string
	}{
		{&tools.Prettier, t.Prettier},
		{&tools.Isort, t.Isort},
		{&tools.Black, t.Black},
		{&tools.Mypy, t.Mypy},
		{&tools.Pylint, t.Pylint},
		{&tools.Pytest, t.Pytest},
	} {
		cmd, err := execrunner.NewCommand(l.line)
		if err != nil {
			return usecase.DevTools{}, err
		}
		*l.dst = cmd
	}
	return tools, nil
}
