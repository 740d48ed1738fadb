package workspacefinder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads irpal.yaml from the repository root and applies defaults.
// A missing file is not an error.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	p := y.Irpal.Paths
	setString(&cfg.Paths.Source, p.Source)
	setString(&cfg.Paths.Tableau, p.Tableau)
	setString(&cfg.Paths.RScript, p.RScript)

	tl := y.Irpal.Tools
	setString(&cfg.Tools.Prettier, tl.Prettier)
	setString(&cfg.Tools.Isort, tl.Isort)
	setString(&cfg.Tools.Black, tl.Black)
	setString(&cfg.Tools.Mypy, tl.Mypy)
	setString(&cfg.Tools.Pylint, tl.Pylint)
	setString(&cfg.Tools.Pytest, tl.Pytest)

	if y.Irpal.Lint.Targets != nil {
		cfg.Lint.Targets = y.Irpal.Lint.Targets
	}

	r := y.Irpal.Release
	setString(&cfg.Release.Branch, r.Branch)
	setString(&cfg.Release.Remote, r.Remote)
	setString(&cfg.Release.ProjectFile, r.ProjectFile)
	setString(&cfg.Release.CommitMessage, r.CommitMessage)
	setString(&cfg.Release.Tag, r.Tag)
	if r.VersionFiles != nil {
		cfg.Release.VersionFiles = r.VersionFiles
	}

	return cfg, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

type yamlConfig struct {
	Irpal struct {
		Paths struct {
			Source  string `yaml:"source"`
			Tableau string `yaml:"tableau"`
			RScript string `yaml:"rscript"`
		} `yaml:"paths"`

		Tools struct {
			Prettier string `yaml:"prettier"`
			Isort    string `yaml:"isort"`
			Black    string `yaml:"black"`
			Mypy     string `yaml:"mypy"`
			Pylint   string `yaml:"pylint"`
			Pytest   string `yaml:"pytest"`
		} `yaml:"tools"`

		Lint struct {
			Targets []string `yaml:"targets"`
		} `yaml:"lint"`

		Release struct {
			Branch        string   `yaml:"branch"`
			Remote        string   `yaml:"remote"`
			ProjectFile   string   `yaml:"project_file"`
			VersionFiles  []string `yaml:"version_files"`
			CommitMessage string   `yaml:"commit_message"`
			Tag           string   `yaml:"tag"`
		} `yaml:"release"`
	} `yaml:"irpal"`
}
