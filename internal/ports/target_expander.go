package ports

// TargetExpander turns configured lint targets, which may be glob patterns,
// into concrete paths relative to the repository root.
type TargetExpander interface {
	Expand(root string, targets []string) ([]string, error)
}
