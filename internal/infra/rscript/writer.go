// Package rscript renders palettes as an R script of named color vectors.
package rscript

import (
	"os"
	"strings"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
)

var header = []string{
	"# Color palettes based on the IR Data Visualization Color Guidelines",
	"# This file is created automatically. Do NOT edit manually.",
	"# See: https://github.com/akita-international-university/ir-color-guide",
	"",
}

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

var _ ports.ArtifactWriter = (*Writer)(nil)

func (w *Writer) Write(palettes []domain.Palette, path string) error {
	if err := os.WriteFile(path, []byte(Render(palettes)), 0o644); err != nil {
		return &domain.OpError{
			Op:   "rscript.write",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// Render returns the script text. Every palette block is followed by an
// empty line; lines are joined with "\n" without a final terminator, so
// the text ends right after the last block's ")" line break.
func Render(palettes []domain.Palette) string {
	lines := append([]string{}, header...)

	for _, p := range palettes {
		lines = append(lines,
			domain.RVariable(p.Name)+" <- c(",
			"    # Type: "+domain.RTypeLabel(p.Category()),
			"    # Description: "+p.Description,
		)

		last := len(p.Colors) - 1
		for i, c := range p.Colors {
			comma := ","
			if i == last {
				comma = ""
			}
			lines = append(lines, `    "`+c.Key+`" = "`+c.Value+`"`+comma)
		}

		lines = append(lines, ")", "")
	}

	return strings.Join(lines, "\n")
}
