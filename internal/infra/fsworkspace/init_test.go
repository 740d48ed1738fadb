package fsworkspace

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/infra/workspacefinder"
	"github.com/akita-international-university/ir-color-guide/internal/infra/yamlpalette"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "irpal.yaml"))
	assertFileExists(t, filepath.Join(tmp, "palettes.yml"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))

	for _, d := range []string{"tableau", "r_script", filepath.Join(".irpal", "logs")} {
		info, err := os.Stat(filepath.Join(tmp, d))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s, err=%v", d, err)
		}
	}
}

func TestInitializer_Init_TemplatesAreUsable(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	cfg, err := workspacefinder.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if !reflect.DeepEqual(cfg, domain.DefaultConfig()) {
		t.Fatalf("expected scaffolded irpal.yaml to match defaults, got %+v", cfg)
	}

	palettes, err := yamlpalette.NewLoader().LoadPalettes(filepath.Join(tmp, "palettes.yml"))
	if err != nil {
		t.Fatalf("LoadPalettes error: %v", err)
	}
	if len(palettes) != 3 {
		t.Fatalf("expected 3 sample palettes, got %d", len(palettes))
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "irpal.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing irpal.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read irpal.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected irpal.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read irpal.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "irpal:") {
		t.Fatalf("expected irpal.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
