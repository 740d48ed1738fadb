package usecase

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
)

func testTools() DevTools {
	poetry := func(tool string) ports.Command {
		return ports.Command{Name: "poetry", Args: []string{"run", tool}}
	}
	return DevTools{
		Prettier: ports.Command{Name: "npx", Args: []string{"prettier"}},
		Isort:    ports.Command{Name: "isort"},
		Black:    ports.Command{Name: "black"},
		Mypy:     poetry("mypy"),
		Pylint:   poetry("pylint"),
		Pytest:   poetry("pytest"),
	}
}

func TestDevTasks_FormatOrder(t *testing.T) {
	r := &fakeRunner{}
	uc := NewDevTasks(r, staticExpander{}, "/repo", testTools(), nil)

	if err := uc.Format(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"npx prettier --write .", "isort .", "black ."}
	if !reflect.DeepEqual(r.calls, want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
}

func TestDevTasks_TestRunsEverything(t *testing.T) {
	r := &fakeRunner{}
	uc := NewDevTasks(r, staticExpander{out: []string{"./scripts", "./tests"}}, "/repo", testTools(), []string{"./scripts", "./tests"})

	if err := uc.Test(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"npx prettier --write .",
		"isort .",
		"black .",
		"poetry run mypy ./scripts",
		"poetry run pylint ./scripts",
		"poetry run mypy ./tests",
		"poetry run pylint ./tests",
		"poetry run pytest",
	}
	if !reflect.DeepEqual(r.calls, want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
}

func TestDevTasks_StopsAtFirstFailure(t *testing.T) {
	r := &fakeRunner{failOn: "poetry run mypy", stderr: "scripts/build.py:3: error"}
	uc := NewDevTasks(r, staticExpander{out: []string{"./scripts"}}, "/repo", testTools(), []string{"./scripts"})

	err := uc.Test(context.Background())
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected execution error, got %v", err)
	}
	if !strings.Contains(err.Error(), "poetry run mypy ./scripts exited with status 1") {
		t.Fatalf("error should name the command, got %v", err)
	}
	if !strings.Contains(err.Error(), "scripts/build.py:3: error") {
		t.Fatalf("error should carry captured stderr, got %v", err)
	}
	for _, c := range r.calls {
		if strings.Contains(c, "pylint") || strings.Contains(c, "pytest") {
			t.Fatalf("expected sequence to stop, got %v", r.calls)
		}
	}
}

func TestDevTasks_ExpanderError(t *testing.T) {
	r := &fakeRunner{}
	expErr := &domain.OpError{Op: "expand", Kind: domain.KindNotFound}
	uc := NewDevTasks(r, staticExpander{err: expErr}, "/repo", testTools(), []string{"src/**"})

	if err := uc.Lint(context.Background()); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if len(r.calls) != 3 {
		t.Fatalf("expected only the formatters to run, got %v", r.calls)
	}
}

func TestDevTasks_CanceledContext(t *testing.T) {
	r := &fakeRunner{}
	uc := NewDevTasks(r, staticExpander{}, "/repo", testTools(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := uc.Format(ctx); err == nil {
		t.Fatalf("expected context error")
	}
	if len(r.calls) != 0 {
		t.Fatalf("expected no calls, got %v", r.calls)
	}
}
