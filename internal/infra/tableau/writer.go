// Package tableau renders palettes as a Tableau Preferences.tps file.
package tableau

import (
	"os"
	"strings"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
)

var header = []string{
	"    <!-- Color palettes based on the IR Data Visualization Color Guidelines -->",
	"    <!-- This file is created automatically. Do NOT edit manually. -->",
	"    <!-- See: https://github.com/akita-international-university/ir-color-guide -->",
}

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

var _ ports.ArtifactWriter = (*Writer)(nil)

// Write overwrites path with the rendered preferences document.
func (w *Writer) Write(palettes []domain.Palette, path string) error {
	if err := os.WriteFile(path, []byte(Render(palettes)), 0o644); err != nil {
		return &domain.OpError{
			Op:   "tableau.write",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// Render returns the preferences document. Names, descriptions, keys and
// values are emitted verbatim.
func Render(palettes []domain.Palette) string {
	lines := []string{"<?xml version='1.0'?>", "<workbook>", "  <preferences>"}
	lines = append(lines, header...)

	for _, p := range palettes {
		lines = append(lines, `    <color-palette name="`+p.Name+`" type="`+domain.TableauType(p.Category())+`">`)

		if p.Description != "" {
			lines = append(lines, "      <!-- "+p.Description+" -->")
		}

		for _, c := range p.Colors {
			if c.Key != "" {
				lines = append(lines, "      <!-- "+c.Key+" -->")
			}
			lines = append(lines, "      <color>"+c.Value+"</color>")
		}

		lines = append(lines, "    </color-palette>")
	}

	lines = append(lines, "  </preferences>", "</workbook>")
	return strings.Join(lines, "\n") + "\n"
}
