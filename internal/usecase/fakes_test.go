package usecase

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/akita-international-university/ir-color-guide/internal/domain"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
)

// --- palette side ---

type fakeLoader struct {
	palettes []domain.Palette
	err      error
}

func (f fakeLoader) LoadPalettes(string) ([]domain.Palette, error) {
	return f.palettes, f.err
}

// fileWriter writes a fixed body and records the call order in log.
type fileWriter struct {
	name string
	body string
	err  error
	log  *[]string
}

func (w fileWriter) Write(_ []domain.Palette, path string) error {
	*w.log = append(*w.log, "write:"+w.name)
	if w.err != nil {
		return w.err
	}
	return os.WriteFile(path, []byte(w.body), 0o644)
}

type fakeFormatter struct {
	err error
	log *[]string
}

func (f fakeFormatter) Format(_ context.Context, path string) error {
	*f.log = append(*f.log, "format")
	return f.err
}

type recordingReporter struct {
	lines []string
}

func (r *recordingReporter) Step(m string) { r.lines = append(r.lines, "step:"+m) }
func (r *recordingReporter) Done(m string) { r.lines = append(r.lines, "done:"+m) }
func (r *recordingReporter) Warn(m string) { r.lines = append(r.lines, "warn:"+m) }
func (r *recordingReporter) Fail(m string) { r.lines = append(r.lines, "fail:"+m) }

func (r *recordingReporter) has(prefix string) bool {
	for _, l := range r.lines {
		if strings.HasPrefix(l, prefix) {
			return true
		}
	}
	return false
}

// --- process side ---

// fakeRunner records command lines and fails the first command whose line
// starts with failOn.
type fakeRunner struct {
	calls  []string
	failOn string
	stderr string
	err    error
}

func (r *fakeRunner) Run(_ context.Context, cmd ports.Command) (ports.CommandResult, error) {
	line := strings.TrimSpace(cmd.Name + " " + strings.Join(cmd.Args, " "))
	r.calls = append(r.calls, line)
	if r.err != nil {
		return ports.CommandResult{}, r.err
	}
	if r.failOn != "" && strings.HasPrefix(line, r.failOn) {
		return ports.CommandResult{ExitCode: 1, Stderr: r.stderr}, nil
	}
	return ports.CommandResult{}, nil
}

type staticExpander struct {
	out []string
	err error
}

func (e staticExpander) Expand(string, []string) ([]string, error) {
	return e.out, e.err
}

// --- release side ---

type fakeVCS struct {
	notRepo bool
	branch  string
	status  []string
	failTag bool

	added   []string
	commits []string
	tags    []string
}

func (v *fakeVCS) EnsureWorkingCopy(context.Context) error {
	if v.notRepo {
		return &domain.OpError{Op: "fake.detect", Kind: domain.KindPrecondition, Err: errors.New("not a repo")}
	}
	return nil
}

func (v *fakeVCS) CurrentBranch(context.Context) (string, error) { return v.branch, nil }

func (v *fakeVCS) StatusLines(context.Context) ([]string, error) { return v.status, nil }

func (v *fakeVCS) Add(_ context.Context, paths ...string) error {
	v.added = append(v.added, paths...)
	return nil
}

func (v *fakeVCS) Commit(_ context.Context, msg string) error {
	v.commits = append(v.commits, msg)
	return nil
}

func (v *fakeVCS) Tag(_ context.Context, name string) error {
	if v.failTag {
		return &domain.OpError{Op: "fake.tag", Kind: domain.KindExecution, Err: errors.New("tag exists")}
	}
	v.tags = append(v.tags, name)
	return nil
}

type fakeStore struct {
	current string
	files   []string

	updatedFrom string
	updatedTo   string
}

func (s *fakeStore) Current() (string, error) { return s.current, nil }

func (s *fakeStore) Update(current, next string) ([]string, error) {
	s.updatedFrom, s.updatedTo = current, next
	return s.files, nil
}
