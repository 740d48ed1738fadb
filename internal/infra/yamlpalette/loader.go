package yamlpalette

import (
	"fmt"
	"os"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.PaletteLoader = (*Loader)(nil)

// LoadPalettes reads the palette document at path. Palettes are returned in
// document order and without normalization; defaults for optional fields
// are left to the consumers.
func (l *Loader) LoadPalettes(path string) ([]domain.Palette, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlpalette.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  fmt.Errorf("YAML file not found: %s: %w", path, err),
		}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, &domain.OpError{
			Op:   "yamlpalette.load",
			Kind: domain.KindParse,
			Path: path,
			Err:  fmt.Errorf("Error parsing YAML file: %s: %w", path, err),
		}
	}

	doc, err := decodeDocument(&root)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlpalette.validate",
			Kind: domain.KindSchema,
			Path: path,
			Err:  err,
		}
	}

	return mapPalettes(doc.Palettes), nil
}

func decodeDocument(root *yaml.Node) (yamlDocument, error) {
	// An empty file yields a zero node; a document holding only "~" yields
	// a null scalar. Both lack the palettes key.
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return yamlDocument{}, domain.ErrMissingPalettes
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return yamlDocument{}, domain.ErrMissingPalettes
	}

	var doc yamlDocument
	if err := top.Decode(&doc); err != nil {
		return yamlDocument{}, fmt.Errorf("%w: %v", domain.ErrInvalidPalettes, err)
	}
	if doc.Palettes == nil {
		return yamlDocument{}, domain.ErrMissingPalettes
	}
	return doc, nil
}

func mapPalettes(in *[]yamlPalette) []domain.Palette {
	out := make([]domain.Palette, 0, len(*in))
	for _, p := range *in {
		colors := make([]domain.ColorEntry, 0, len(p.Colors))
		for _, c := range p.Colors {
			colors = append(colors, domain.ColorEntry{Key: c.Key, Value: c.Value})
		}
		out = append(out, domain.Palette{
			Name:        p.Name,
			Type:        domain.Category(p.Type),
			Description: p.Description,
			Colors:      colors,
		})
	}
	return out
}
