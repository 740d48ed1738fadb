// Package globtargets expands lint target patterns with doublestar globs.
package globtargets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
)

type Expander struct{}

func New() *Expander {
	return &Expander{}
}

var _ ports.TargetExpander = (*Expander)(nil)

// Expand keeps plain targets as they are, in order, and replaces each
// pattern with its sorted matches. A pattern that matches nothing is an
// error so that a typo does not silently skip linting.
func (e *Expander) Expand(root string, targets []string) ([]string, error) {
	fsys := os.DirFS(root)
	var out []string
	seen := map[string]bool{}

	for _, t := range targets {
		pattern := filepath.ToSlash(strings.TrimPrefix(t, "./"))
		if !hasMeta(pattern) {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
			continue
		}

		if !doublestar.ValidatePattern(pattern) {
			return nil, &domain.OpError{
				Op:   "globtargets.expand",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("invalid lint target pattern %q", t),
			}
		}

		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, &domain.OpError{Op: "globtargets.expand", Kind: domain.KindInvalidConfig, Path: root, Err: err}
		}
		if len(matches) == 0 {
			return nil, &domain.OpError{
				Op:   "globtargets.expand",
				Kind: domain.KindNotFound,
				Path: root,
				Err:  fmt.Errorf("lint target %q matched no files", t),
			}
		}
		sort.Strings(matches)
		for _, m := range matches {
			p := "./" + m
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}

	return out, nil
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}
