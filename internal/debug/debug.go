package debug

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable that enables file logging.
const EnvVar = "TUI_DEBUG"

var (
	mu       sync.Mutex
	logFile  *os.File
	sink     slog.Handler = slog.DiscardHandler
	levelVar              = new(slog.LevelVar)
	envOnce  sync.Once
	root     = slog.New(&switchHandler{})
)

func init() {
	levelVar.Set(slog.LevelDebug)
}

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	sink = slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar})
	return nil
}

// SetLevel sets the minimum level written to the log file.
func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

// Close closes the debug log file. Subsequent records are discarded.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	sink = slog.DiscardHandler
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Logger returns the package logger. Records are discarded until Init is
// called or TUI_DEBUG names a file.
func Logger() *slog.Logger {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			mu.Lock()
			if logFile == nil {
				// Best effort: a bad path leaves logging disabled.
				_ = initLocked(path)
			}
			mu.Unlock()
		}
	})
	return root
}

// Log writes a printf-style debug record.
func Log(format string, args ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}

func current() slog.Handler {
	mu.Lock()
	defer mu.Unlock()
	return sink
}

// switchHandler forwards to whatever sink is current when a record arrives.
// Attributes and groups added through With/WithGroup are replayed onto it.
type switchHandler struct {
	ops []handlerOp
}

type handlerOp struct {
	group string
	attrs []slog.Attr
}

func (h *switchHandler) resolve() slog.Handler {
	out := current()
	for _, op := range h.ops {
		if op.group != "" {
			out = out.WithGroup(op.group)
			continue
		}
		out = out.WithAttrs(op.attrs)
	}
	return out
}

func (h *switchHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return current().Enabled(ctx, level)
}

func (h *switchHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.resolve().Handle(ctx, r)
}

func (h *switchHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.with(handlerOp{attrs: attrs})
}

func (h *switchHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.with(handlerOp{group: name})
}

func (h *switchHandler) with(op handlerOp) *switchHandler {
	ops := make([]handlerOp, len(h.ops), len(h.ops)+1)
	copy(ops, h.ops)
	return &switchHandler{ops: append(ops, op)}
}
