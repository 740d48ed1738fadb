package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/akita-international-university/ir-color-guide/internal/ports"
	"github.com/akita-international-university/ir-color-guide/internal/usecase"
)

type theme struct {
	Step lipgloss.Style
	Done lipgloss.Style
	Warn lipgloss.Style
	Fail lipgloss.Style
	Path lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Step: lipgloss.NewStyle().Faint(true),
		Done: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warn: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Fail: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Path: lipgloss.NewStyle().Bold(true),
	}
}

// termReporter prints progress to out and failures to errOut.
type termReporter struct {
	out    io.Writer
	errOut io.Writer
	theme  theme
}

func newTermReporter(out, errOut io.Writer) *termReporter {
	return &termReporter{out: out, errOut: errOut, theme: defaultTheme()}
}

var _ ports.Reporter = (*termReporter)(nil)

func (r *termReporter) Step(msg string) { fmt.Fprintln(r.out, r.theme.Step.Render(msg)) }
func (r *termReporter) Done(msg string) { fmt.Fprintln(r.out, r.theme.Done.Render(msg)) }
func (r *termReporter) Warn(msg string) { fmt.Fprintln(r.errOut, r.theme.Warn.Render(msg)) }
func (r *termReporter) Fail(msg string) { fmt.Fprintln(r.errOut, r.theme.Fail.Render(msg)) }

func (r *termReporter) summary(res usecase.GenerateResult) {
	for _, a := range res.Artifacts {
		fmt.Fprintf(r.out, "  %s  %s\n", r.theme.Path.Render(a.Path), humanize.Bytes(uint64(a.Bytes)))
	}
}

func (r *termReporter) issues(issues []usecase.Issue) {
	for _, is := range issues {
		if is.Severity == usecase.SeverityError {
			r.Fail(is.String())
			continue
		}
		r.Warn(is.String())
	}
}
