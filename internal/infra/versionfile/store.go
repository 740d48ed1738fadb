// Package versionfile reads and rewrites the project version recorded in
// pyproject.toml and in Python modules exposing __version__.
package versionfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
)

type Store struct {
	root         string
	projectFile  string
	versionFiles []string
}

func New(root string, cfg domain.ReleaseConfig) *Store {
	project := cfg.ProjectFile
	if strings.TrimSpace(project) == "" {
		project = domain.DefaultConfig().Release.ProjectFile
	}
	return &Store{
		root:         root,
		projectFile:  project,
		versionFiles: cfg.VersionFiles,
	}
}

var _ ports.VersionStore = (*Store)(nil)

type pyproject struct {
	Tool struct {
		Poetry struct {
			Version string `toml:"version"`
		} `toml:"poetry"`
	} `toml:"tool"`
	Project struct {
		Version string `toml:"version"`
	} `toml:"project"`
}

// Current returns tool.poetry.version, or project.version when the poetry
// table has none.
func (s *Store) Current() (string, error) {
	path := filepath.Join(s.root, s.projectFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &domain.OpError{
			Op:   "versionfile.read",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	v, _, err := projectVersion(b)
	if err != nil {
		kind := domain.KindSchema
		var de *toml.DecodeError
		if errors.As(err, &de) {
			kind = domain.KindParse
		}
		return "", &domain.OpError{Op: "versionfile.read", Kind: kind, Path: path, Err: err}
	}
	return v, nil
}

// projectVersion returns the recorded version and the table holding it.
func projectVersion(b []byte) (string, string, error) {
	var p pyproject
	if err := toml.Unmarshal(b, &p); err != nil {
		return "", "", err
	}
	if v := p.Tool.Poetry.Version; v != "" {
		return v, "tool.poetry", nil
	}
	if v := p.Project.Version; v != "" {
		return v, "project", nil
	}
	return "", "", errors.New("no version in [tool.poetry] or [project]")
}

// Update rewrites the version in the project file and in every version file
// that records it.
func (s *Store) Update(current, next string) ([]string, error) {
	changed := []string{}

	projectPath := filepath.Join(s.root, s.projectFile)
	var table string
	ok, err := s.rewrite(s.projectFile, func(text string) (string, bool) {
		_, t, err := projectVersion([]byte(text))
		if err != nil {
			return text, false
		}
		table = t
		out, ok := replaceProjectVersion(text, table, current, next)
		if !ok {
			return text, false
		}
		// The edited document must report next from the same table.
		if v, t, err := projectVersion([]byte(out)); err != nil || v != next || t != table {
			return text, false
		}
		return out, true
	})
	if err != nil {
		return changed, err
	}
	if !ok {
		where := "[tool.poetry] or [project]"
		if table != "" {
			where = "[" + table + "]"
		}
		return changed, &domain.OpError{
			Op:   "versionfile.update",
			Kind: domain.KindSchema,
			Path: projectPath,
			Err:  fmt.Errorf("no version = %q line in %s", current, where),
		}
	}

	for _, rel := range s.versionFiles {
		ok, err := s.rewrite(rel, func(text string) (string, bool) {
			old := fmt.Sprintf("__version__ = %q", current)
			if !strings.Contains(text, old) {
				return text, false
			}
			return strings.ReplaceAll(text, old, fmt.Sprintf("__version__ = %q", next)), true
		})
		if err != nil {
			return changed, err
		}
		if ok {
			changed = append(changed, rel)
		}
	}

	// Staged after the version files, as the release commit always was.
	changed = append(changed, s.projectFile)
	return changed, nil
}

func (s *Store) rewrite(rel string, edit func(string) (string, bool)) (bool, error) {
	path := filepath.Join(s.root, rel)
	b, err := os.ReadFile(path)
	if err != nil {
		return false, &domain.OpError{
			Op:   "versionfile.update",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	out, ok := edit(string(b))
	if !ok {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return false, &domain.OpError{
			Op:   "versionfile.update",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return true, nil
}

var (
	tableHeader = regexp.MustCompile(`^\s*\[\s*([^\[\]]+?)\s*\]\s*(#.*)?$`)
	arrayHeader = regexp.MustCompile(`^\s*\[\[`)
)

// replaceProjectVersion rewrites the `version = "<current>"` line of the
// given table and leaves every other table alone.
func replaceProjectVersion(text, table, current, next string) (string, bool) {
	re := regexp.MustCompile(`^(\s*version\s*=\s*)(["'])` + regexp.QuoteMeta(current) + `(["'])`)

	lines := strings.SplitAfter(text, "\n")
	inTable := false
	for i, line := range lines {
		if arrayHeader.MatchString(line) {
			inTable = false
			continue
		}
		if m := tableHeader.FindStringSubmatch(strings.TrimRight(line, "\r\n")); m != nil {
			inTable = normalizeTable(m[1]) == table
			continue
		}
		if !inTable {
			continue
		}
		if loc := re.FindStringSubmatchIndex(line); loc != nil {
			lines[i] = line[:loc[5]] + next + line[loc[6]:]
			return strings.Join(lines, ""), true
		}
	}
	return text, false
}

// normalizeTable turns `tool . poetry` or `"tool".poetry` into tool.poetry.
func normalizeTable(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = strings.Trim(strings.TrimSpace(p), `"'`)
	}
	return strings.Join(parts, ".")
}
