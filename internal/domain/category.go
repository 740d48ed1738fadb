package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultTableauType is used for any category Tableau has no ordered type for.
const DefaultTableauType = "regular"

// TableauType maps a palette category to the type attribute of a Tableau
// <color-palette> element.
func TableauType(c Category) string {
	switch c {
	case CategoryCategorical:
		return "regular"
	case CategorySequential:
		return "ordered-sequential"
	case CategoryDiverging:
		return "ordered-diverging"
	default:
		return DefaultTableauType
	}
}

// RTypeLabel maps a palette category to the label written in the
// "# Type:" comment of the R script. Unknown categories are capitalized:
// first letter upper case, the rest lower case.
func RTypeLabel(c Category) string {
	switch c {
	case CategoryCategorical:
		return "Categorical"
	case CategorySequential:
		return "Sequential"
	case CategoryDiverging:
		return "Diverging"
	default:
		return capitalize(string(c))
	}
}

var lowerCaser = cases.Lower(language.Und)

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + lowerCaser.String(s[size:])
}

// VariableName derives the R identifier suffix for a palette name:
// lower-case, ASCII spaces become underscores, then every rune that is not
// a letter, digit or underscore is dropped. Other whitespace and
// punctuation vanish without a separator, so "Test-Palette" becomes
// "testpalette".
func VariableName(name string) string {
	lowered := strings.ReplaceAll(strings.ToLower(name), " ", "_")

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RVariable is the full R variable name assigned for a palette.
func RVariable(name string) string {
	return "color_values_" + VariableName(name)
}
