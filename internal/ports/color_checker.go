package ports

// ColorChecker reports whether a palette color value is a usable color.
type ColorChecker interface {
	Check(value string) error
}
