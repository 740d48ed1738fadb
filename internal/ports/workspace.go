package ports

import "github.com/akita-international-university/ir-color-guide/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
