package usecase

import (
	"fmt"
	"strings"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding about a palette document.
type Issue struct {
	Severity Severity
	// Palette is the palette's position in the document, starting at 1.
	Palette int
	Name    string
	Message string
}

func (i Issue) String() string {
	name := i.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("%s: palette #%d (%s): %s", i.Severity, i.Palette, name, i.Message)
}

type ValidatePalettes struct {
	loader  ports.PaletteLoader
	checker ports.ColorChecker
}

func NewValidatePalettes(loader ports.PaletteLoader, checker ports.ColorChecker) *ValidatePalettes {
	return &ValidatePalettes{loader: loader, checker: checker}
}

// Execute loads the palette source and checks it without writing anything.
// Issues are always returned; the error is non-nil when loading failed or
// at least one issue has error severity.
func (uc *ValidatePalettes) Execute(path string) ([]Issue, error) {
	palettes, err := uc.loader.LoadPalettes(path)
	if err != nil {
		return nil, err
	}

	issues := uc.Check(palettes)

	errorsFound := 0
	for _, is := range issues {
		if is.Severity == SeverityError {
			errorsFound++
		}
	}
	if errorsFound > 0 {
		return issues, &domain.OpError{
			Op:   "validate.palettes",
			Kind: domain.KindSchema,
			Path: path,
			Err:  fmt.Errorf("%d palette error(s) found", errorsFound),
		}
	}
	return issues, nil
}

// Check reports problems in already loaded palettes.
func (uc *ValidatePalettes) Check(palettes []domain.Palette) []Issue {
	var issues []Issue
	seen := map[string]int{}

	for idx, p := range palettes {
		n := idx + 1
		add := func(sev Severity, format string, args ...any) {
			issues = append(issues, Issue{Severity: sev, Palette: n, Name: p.Name, Message: fmt.Sprintf(format, args...)})
		}

		if strings.TrimSpace(p.Name) == "" {
			add(SeverityError, "name is empty")
		}

		if !p.Category().Known() {
			add(SeverityWarning, "unknown type %q, Tableau type %q is used", p.Type, domain.TableauType(p.Category()))
		}

		if len(p.Colors) == 0 {
			add(SeverityWarning, "palette has no colors")
		}

		for ci, c := range p.Colors {
			if uc.checker == nil {
				break
			}
			if err := uc.checker.Check(c.Value); err != nil {
				add(SeverityError, "color #%d: %v", ci+1, err)
			}
		}

		if p.Name == "" {
			continue
		}
		v := domain.RVariable(p.Name)
		if first, dup := seen[v]; dup {
			add(SeverityError, "R variable %s already defined by palette #%d", v, first)
			continue
		}
		seen[v] = n
	}

	return issues
}
