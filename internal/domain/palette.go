package domain

// Category is the semantic kind of a palette as written in palettes.yml.
type Category string

const (
	CategoryCategorical Category = "categorical"
	CategorySequential  Category = "sequential"
	CategoryDiverging   Category = "diverging"
)

// DefaultCategory applies when a palette does not declare a type.
const DefaultCategory = CategoryCategorical

// ColorEntry is a single color of a palette. Key is an optional label.
type ColorEntry struct {
	Key   string
	Value string
}

// Palette is a named, ordered collection of colors.
// Type is kept exactly as written in the source; use Category for the
// resolved value.
type Palette struct {
	Name        string
	Type        Category
	Description string
	Colors      []ColorEntry
}

// Category returns the palette type, or DefaultCategory when none was given.
func (p Palette) Category() Category {
	if p.Type == "" {
		return DefaultCategory
	}
	return p.Type
}

// Known reports whether c is one of the recognized categories.
func (c Category) Known() bool {
	switch c {
	case CategoryCategorical, CategorySequential, CategoryDiverging:
		return true
	default:
		return false
	}
}
