package ports

import "context"

// Formatter rewrites a generated file in place.
type Formatter interface {
	Format(ctx context.Context, path string) error
}
