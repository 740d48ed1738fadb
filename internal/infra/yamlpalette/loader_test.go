package yamlpalette

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "palettes.yml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadPalettes_Valid(t *testing.T) {
	p := writeFile(t, `
organization:
  name: Test University
palettes:
  - name: Test Palette
    type: categorical
    description: A test palette
    colors:
      - key: Color One
        value: "#ff0000"
      - key: Color Two
        value: "#00ff00"
  - name: Sequential Test
    type: sequential
    colors:
      - value: "#e0e0e0"
`)

	got, err := NewLoader().LoadPalettes(p)
	if err != nil {
		t.Fatalf("LoadPalettes error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 palettes, got=%d", len(got))
	}
	if got[0].Name != "Test Palette" || got[0].Type != domain.CategoryCategorical {
		t.Fatalf("unexpected first palette: %+v", got[0])
	}
	if got[0].Description != "A test palette" {
		t.Fatalf("expected description, got %q", got[0].Description)
	}
	if len(got[0].Colors) != 2 || got[0].Colors[1] != (domain.ColorEntry{Key: "Color Two", Value: "#00ff00"}) {
		t.Fatalf("unexpected colors: %+v", got[0].Colors)
	}
	if got[1].Name != "Sequential Test" {
		t.Fatalf("expected source order to be kept, got %q", got[1].Name)
	}
	if got[1].Colors[0].Key != "" {
		t.Fatalf("expected empty key, got %q", got[1].Colors[0].Key)
	}
}

func TestLoadPalettes_MissingTypeIsLeftEmpty(t *testing.T) {
	p := writeFile(t, `
palettes:
  - name: Untyped
    colors: []
`)

	got, err := NewLoader().LoadPalettes(p)
	if err != nil {
		t.Fatalf("LoadPalettes error: %v", err)
	}
	if got[0].Type != "" {
		t.Fatalf("expected raw empty type, got %q", got[0].Type)
	}
	if got[0].Category() != domain.CategoryCategorical {
		t.Fatalf("expected categorical default, got %q", got[0].Category())
	}
}

func TestLoadPalettes_EmptyList(t *testing.T) {
	p := writeFile(t, "palettes: []\n")

	got, err := NewLoader().LoadPalettes(p)
	if err != nil {
		t.Fatalf("LoadPalettes error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no palettes, got %d", len(got))
	}
}

func TestLoadPalettes_NotFound(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.yml")

	_, err := NewLoader().LoadPalettes(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "YAML file not found") || !strings.Contains(err.Error(), p) {
		t.Fatalf("expected message with path, got %v", err)
	}
}

func TestLoadPalettes_Malformed(t *testing.T) {
	p := writeFile(t, "palettes:\n  - name: [unclosed\n")

	_, err := NewLoader().LoadPalettes(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindParse) {
		t.Fatalf("expected KindParse, got %v", err)
	}
	if !strings.Contains(err.Error(), "Error parsing YAML file") || !strings.Contains(err.Error(), p) {
		t.Fatalf("expected message with path, got %v", err)
	}
}

func TestLoadPalettes_SchemaErrors(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"null":         "~\n",
		"missing key":  "organization:\n  name: X\n",
		"null key":     "palettes:\n",
		"list at root": "- a\n- b\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			p := writeFile(t, content)
			_, err := NewLoader().LoadPalettes(p)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindSchema) {
				t.Fatalf("expected KindSchema, got %v", err)
			}
			if !errors.Is(err, domain.ErrMissingPalettes) {
				t.Fatalf("expected ErrMissingPalettes, got %v", err)
			}
			if !strings.Contains(err.Error(), "YAML file must contain 'palettes' key") {
				t.Fatalf("unexpected message: %v", err)
			}
		})
	}
}

func TestLoadPalettes_WrongShape(t *testing.T) {
	cases := map[string]string{
		"not a list":     "palettes: nope\n",
		"colors scalar":  "palettes:\n  - name: A\n    colors: red\n",
		"palette scalar": "palettes:\n  - just-a-name\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewLoader().LoadPalettes(writeFile(t, content))
			if !domain.IsKind(err, domain.KindSchema) {
				t.Fatalf("expected KindSchema, got %v", err)
			}
			if !errors.Is(err, domain.ErrInvalidPalettes) {
				t.Fatalf("expected ErrInvalidPalettes, got %v", err)
			}
			if errors.Is(err, domain.ErrMissingPalettes) || strings.Contains(err.Error(), "must contain 'palettes' key") {
				t.Fatalf("present key reported as missing: %v", err)
			}
		})
	}
}
