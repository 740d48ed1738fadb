package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
)

// ArtifactPaths are absolute paths of the palette source and both outputs.
type ArtifactPaths struct {
	Source  string
	Tableau string
	RScript string
}

// Artifact is one file written by a generation run.
type Artifact struct {
	Path  string
	Bytes int64
}

type GenerateResult struct {
	Palettes  int
	Artifacts []Artifact
}

type GenerateArtifacts struct {
	loader    ports.PaletteLoader
	tableau   ports.ArtifactWriter
	rscript   ports.ArtifactWriter
	formatter ports.Formatter
	reporter  ports.Reporter
	reported  bool
	logger    *slog.Logger
}

type GenerateOption func(*GenerateArtifacts)

func WithReporter(r ports.Reporter) GenerateOption {
	return func(uc *GenerateArtifacts) {
		if r != nil {
			uc.reporter = r
			uc.reported = true
		}
	}
}

func WithGenerateLogger(l *slog.Logger) GenerateOption {
	return func(uc *GenerateArtifacts) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewGenerateArtifacts(
	loader ports.PaletteLoader,
	tableau ports.ArtifactWriter,
	rscript ports.ArtifactWriter,
	formatter ports.Formatter,
	opts ...GenerateOption,
) *GenerateArtifacts {
	uc := &GenerateArtifacts{
		loader:    loader,
		tableau:   tableau,
		rscript:   rscript,
		formatter: formatter,
		reporter:  ports.NopReporter{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads the palette source and writes the preferences file, formats
// it, then writes the script file. The first failure aborts the run; files
// written before it are left in place.
func (uc *GenerateArtifacts) Execute(ctx context.Context, paths ArtifactPaths) (GenerateResult, error) {
	var res GenerateResult
	uc.logger.Info("generate.start", "source", paths.Source)

	uc.reporter.Step(fmt.Sprintf("Loading palettes from %s...", paths.Source))
	palettes, err := uc.loader.LoadPalettes(paths.Source)
	if err != nil {
		uc.logger.Error("generate.load_failed", "source", paths.Source, "error", err)
		return res, err
	}
	res.Palettes = len(palettes)
	uc.reporter.Done(fmt.Sprintf("Loaded %d palette(s).", len(palettes)))

	for _, dir := range []string{filepath.Dir(paths.Tableau), filepath.Dir(paths.RScript)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return res, &domain.OpError{Op: "generate.mkdir", Kind: domain.KindExecution, Path: dir, Err: err}
		}
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	uc.reporter.Step(fmt.Sprintf("Generating Tableau Preferences file at %s...", paths.Tableau))
	if err := uc.tableau.Write(palettes, paths.Tableau); err != nil {
		return res, err
	}
	res.Artifacts = append(res.Artifacts, artifact(paths.Tableau))
	uc.reporter.Done("Tableau Preferences file generated.")

	uc.reporter.Step(fmt.Sprintf("Running Prettier on %s...", paths.Tableau))
	if err := uc.formatter.Format(ctx, paths.Tableau); err != nil {
		uc.logger.Error("formatter.failed", "path", paths.Tableau, "error", err)
		if stderr, ok := domain.ToolStderr(err); ok && uc.reported {
			uc.reporter.Fail(fmt.Sprintf("Prettier failed for %s.\nError output:\n%s", paths.Tableau, stderr))
			// The output was just shown; the returned error only names the failure.
			return res, domain.ElideStderr(err)
		}
		return res, err
	}
	// Formatting rewrites the file, so the size is taken again.
	res.Artifacts[0] = artifact(paths.Tableau)
	uc.reporter.Done(fmt.Sprintf("Prettier formatting done for %s.", paths.Tableau))

	uc.reporter.Step(fmt.Sprintf("Generating R script file at %s...", paths.RScript))
	if err := uc.rscript.Write(palettes, paths.RScript); err != nil {
		return res, err
	}
	res.Artifacts = append(res.Artifacts, artifact(paths.RScript))
	uc.reporter.Done("R script file generated.")

	uc.reporter.Done("All files generated successfully.")
	uc.logger.Info("generate.done", "palettes", res.Palettes)
	return res, nil
}

func artifact(path string) Artifact {
	a := Artifact{Path: path}
	if info, err := os.Stat(path); err == nil {
		a.Bytes = info.Size()
	}
	return a
}

// SkipFormat is a Formatter that leaves files untouched.
type SkipFormat struct{}

func (SkipFormat) Format(context.Context, string) error { return nil }
