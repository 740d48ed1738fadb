// Package logger keeps the process-wide structured logger. Records go to
// <root>/.irpal/logs/irpal.log as JSON; until Setup succeeds they are
// discarded.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	stateDir = ".irpal"
	fileName = "irpal.log"
)

type Config struct {
	Root  string
	Debug bool
}

// sink is everything Setup installs. The zero value discards records.
type sink struct {
	logger  *slog.Logger
	file    *os.File
	path    string
	started time.Time
}

var (
	mu      sync.RWMutex
	current = sink{logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
)

// Setup opens the log file under cfg.Root and installs it as the process
// logger. Every record carries the repository root. The returned function
// closes the file and goes back to discarding.
func Setup(cfg Config) (func() error, error) {
	root := filepath.Clean(cfg.Root)

	f, path, err := openLogFile(root)
	if err != nil {
		install(sink{})
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo, ReplaceAttr: utcTime}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	l := slog.New(slog.NewJSONHandler(f, opts)).With("root", root)

	install(sink{logger: l, file: f, path: path, started: time.Now().UTC()})
	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		prev := install(sink{})
		if prev.file == nil {
			return nil
		}
		return prev.file.Close()
	}, nil
}

func openLogFile(root string) (*os.File, string, error) {
	dir := filepath.Join(root, stateDir, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", err
	}
	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}

// install swaps in s and returns the sink it replaced.
func install(s sink) sink {
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	mu.Lock()
	defer mu.Unlock()
	prev := current
	current = s
	return prev
}

func snapshot() sink {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func L() *slog.Logger { return snapshot().logger }

// ForComponent returns the current logger tagged with a component name.
func ForComponent(component string) *slog.Logger {
	return L().With("component", component)
}

func Path() string { return snapshot().path }

func InitTime() time.Time { return snapshot().started }

func IsReady() error {
	if s := snapshot(); s.file == nil || s.path == "" {
		return errors.New("logger not initialized")
	}
	return nil
}
