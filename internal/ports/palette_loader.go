package ports

import "github.com/akita-international-university/ir-color-guide/internal/domain"

// PaletteLoader loads palettes from a source document (e.g., palettes.yml).
type PaletteLoader interface {
	LoadPalettes(path string) ([]domain.Palette, error)
}
