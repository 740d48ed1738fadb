package domain

import "strings"

// BumpKind is the semantic-versioning component to increment.
type BumpKind string

const (
	BumpMajor BumpKind = "major"
	BumpMinor BumpKind = "minor"
	BumpPatch BumpKind = "patch"
)

// ParseBumpKind accepts exactly "major", "minor" or "patch".
func ParseBumpKind(s string) (BumpKind, error) {
	switch k := BumpKind(strings.TrimSpace(s)); k {
	case BumpMajor, BumpMinor, BumpPatch:
		return k, nil
	default:
		return "", &OpError{
			Op:   "version.parse_kind",
			Kind: KindBadArgument,
			Err:  ErrInvalidBumpKind,
		}
	}
}
