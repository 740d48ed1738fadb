package tableau

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
)

func samplePalettes() []domain.Palette {
	return []domain.Palette{
		{
			Name:        "Test Palette",
			Type:        domain.CategoryCategorical,
			Description: "A test palette",
			Colors: []domain.ColorEntry{
				{Key: "Color One", Value: "#ff0000"},
				{Key: "Color Two", Value: "#00ff00"},
			},
		},
		{
			Name: "Sequential Test",
			Type: domain.CategorySequential,
			Colors: []domain.ColorEntry{
				{Value: "#e0e0e0"},
				{Key: "Dark", Value: "#202020"},
			},
		},
	}
}

func TestRender_ExactLayout(t *testing.T) {
	want := strings.Join([]string{
		"<?xml version='1.0'?>",
		"<workbook>",
		"  <preferences>",
		"    <!-- Color palettes based on the IR Data Visualization Color Guidelines -->",
		"    <!-- This file is created automatically. Do NOT edit manually. -->",
		"    <!-- See: https://github.com/akita-international-university/ir-color-guide -->",
		`    <color-palette name="Test Palette" type="regular">`,
		"      <!-- A test palette -->",
		"      <!-- Color One -->",
		"      <color>#ff0000</color>",
		"      <!-- Color Two -->",
		"      <color>#00ff00</color>",
		"    </color-palette>",
		`    <color-palette name="Sequential Test" type="ordered-sequential">`,
		"      <color>#e0e0e0</color>",
		"      <!-- Dark -->",
		"      <color>#202020</color>",
		"    </color-palette>",
		"  </preferences>",
		"</workbook>",
		"",
	}, "\n")

	if got := Render(samplePalettes()); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_UnknownAndMissingType(t *testing.T) {
	out := Render([]domain.Palette{
		{Name: "A", Type: "qualitative"},
		{Name: "B"},
		{Name: "C", Type: domain.CategoryDiverging},
	})

	for _, want := range []string{
		`<color-palette name="A" type="regular">`,
		`<color-palette name="B" type="regular">`,
		`<color-palette name="C" type="ordered-diverging">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRender_EmptyIsBalanced(t *testing.T) {
	out := Render(nil)

	if strings.Contains(out, "<color-palette") {
		t.Fatalf("expected no palettes, got:\n%s", out)
	}
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("output is not well-formed XML: %v\n%s", err, out)
		}
	}
}

func TestWrite_OverwritesWithLF(t *testing.T) {
	p := filepath.Join(t.TempDir(), "Preferences.tps")
	if err := os.WriteFile(p, []byte("stale content that is much longer than nothing\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewWriter().Write(samplePalettes()[:1], p); err != nil {
		t.Fatalf("Write: %v", err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "\r") {
		t.Fatalf("expected LF-only line endings")
	}
	if strings.Contains(string(b), "stale") {
		t.Fatalf("expected file to be overwritten")
	}
	if !strings.HasSuffix(string(b), "</workbook>\n") {
		t.Fatalf("expected trailing newline after </workbook>")
	}
}

func TestWrite_MissingDirectory(t *testing.T) {
	p := filepath.Join(t.TempDir(), "no", "such", "dir", "Preferences.tps")

	err := NewWriter().Write(nil, p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected KindExecution, got %v", err)
	}
}
