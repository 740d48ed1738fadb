package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrMissingPalettes = errors.New("YAML file must contain 'palettes' key")
	ErrInvalidPalettes = errors.New("invalid 'palettes' entry")
	ErrInvalidBumpKind = errors.New("version_type must be 'major', 'minor', or 'patch'")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindParse           ErrorKind = "parse"
	KindSchema          ErrorKind = "schema"
	KindFormatterFailed ErrorKind = "formatter_failed"
	KindPrecondition    ErrorKind = "precondition_failed"
	KindBadArgument     ErrorKind = "bad_argument"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindExecution       ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}

// ToolError describes an external tool that ran and exited non-zero.
type ToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d\nError output:\n%s", e.Tool, e.ExitCode, e.Stderr)
}

// ToolStderr returns the captured error output of a ToolError in err's chain.
func ToolStderr(err error) (string, bool) {
	var te *ToolError
	if errors.As(err, &te) {
		return te.Stderr, true
	}
	return "", false
}

// ElideStderr returns err without the captured output of its ToolError, for
// callers that have already shown that output to the user. Errors of any
// other shape are returned unchanged.
func ElideStderr(err error) error {
	switch e := err.(type) {
	case *ToolError:
		return &ToolError{Tool: e.Tool, ExitCode: e.ExitCode}
	case *OpError:
		te, ok := e.Err.(*ToolError)
		if !ok {
			return err
		}
		cp := *e
		cp.Err = &ToolError{Tool: te.Tool, ExitCode: te.ExitCode}
		return &cp
	}
	return err
}
