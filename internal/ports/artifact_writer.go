package ports

import "github.com/akita-international-university/ir-color-guide/internal/domain"

// ArtifactWriter renders palettes into one output format and overwrites path.
type ArtifactWriter interface {
	Write(palettes []domain.Palette, path string) error
}
