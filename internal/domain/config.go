package domain

// Config represents the irpal configuration loaded from irpal.yaml.
type Config struct {
	Paths   PathsConfig
	Tools   ToolsConfig
	Lint    LintConfig
	Release ReleaseConfig
}

// PathsConfig holds paths relative to the repository root.
type PathsConfig struct {
	Source  string
	Tableau string
	RScript string
}

// ToolsConfig holds the command lines used to invoke external tools.
// Each value is split into arguments shell-style.
type ToolsConfig struct {
	Prettier string
	Isort    string
	Black    string
	Mypy     string
	Pylint   string
	Pytest   string
}

type LintConfig struct {
	Targets []string
}

type ReleaseConfig struct {
	Branch        string
	Remote        string
	ProjectFile   string
	VersionFiles  []string
	CommitMessage string
	Tag           string
}

// DefaultConfig provides sane defaults if irpal.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			Source:  "palettes.yml",
			Tableau: "tableau/Preferences.tps",
			RScript: "r_script/ir_color_palettes.R",
		},
		Tools: ToolsConfig{
			Prettier: "npx prettier",
			Isort:    "isort",
			Black:    "black",
			Mypy:     "poetry run mypy",
			Pylint:   "poetry run pylint",
			Pytest:   "poetry run pytest",
		},
		Lint: LintConfig{
			Targets: []string{"./scripts"},
		},
		Release: ReleaseConfig{
			Branch:        "main",
			Remote:        "origin",
			ProjectFile:   "pyproject.toml",
			VersionFiles:  []string{"scripts/__init__.py"},
			CommitMessage: "Bump version to {{version}}",
			Tag:           "v{{version}}",
		},
	}
}

// WorkspaceSpec describes where to scaffold a new irpal workspace.
type WorkspaceSpec struct {
	Root string
}
