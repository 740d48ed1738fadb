package ports

// VersionStore reads and rewrites the project version.
type VersionStore interface {
	Current() (string, error)
	// Update replaces current with next everywhere the version is recorded
	// and returns the files it changed, relative to the repository root.
	Update(current, next string) ([]string, error)
}
