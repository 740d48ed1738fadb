// Package colorcheck validates palette color values.
package colorcheck

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/akita-international-university/ir-color-guide/internal/ports"
)

// Checker accepts "#rgb" and "#rrggbb" hex colors.
type Checker struct{}

func New() *Checker {
	return &Checker{}
}

var _ ports.ColorChecker = (*Checker)(nil)

func (c *Checker) Check(value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return fmt.Errorf("empty color value")
	}
	if v != value {
		return fmt.Errorf("color %q has surrounding whitespace", value)
	}
	if _, err := colorful.Hex(v); err != nil {
		return fmt.Errorf("color %q is not a hex color: %w", value, err)
	}
	return nil
}
