package usecase

import (
	"testing"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
)

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec, f.force = spec, force
	return nil
}

func TestInitWorkspace_PassesRootAndForce(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitWorkspace(fi).Execute("/tmp/ws", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fi.spec.Root != "/tmp/ws" || !fi.force {
		t.Fatalf("unexpected call: %+v force=%v", fi.spec, fi.force)
	}
}
