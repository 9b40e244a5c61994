package twitterbot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// logFileName returns the dated log file name, e.g. twitter_bot_29_08_2026.log.
func logFileName(now time.Time) string {
	return "twitter_bot_" + now.Format("02_01_2006") + ".log"
}

// openLogFile opens (append, create) the dated log file under dir/logs.
func openLogFile(dir string, now time.Time) (*os.File, error) {
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(logDir, logFileName(now))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return f, nil
}

// logHandler is a minimal slog.Handler writing "timestamp - LEVEL - message"
// lines, with any attrs appended as key=value pairs.
type logHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Level
	attrs []slog.Attr
}

// newLogger wraps a writer in the line-format handler.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(&logHandler{mu: &sync.Mutex{}, w: w, level: slog.LevelInfo})
}

func (h *logHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *logHandler) Handle(_ context.Context, r slog.Record) error {
	line := fmt.Sprintf("%s - %s - %s", r.Time.Format("2006-01-02 15:04:05"), r.Level, r.Message)
	for _, a := range h.attrs {
		line += fmt.Sprintf(" %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		line += fmt.Sprintf(" %s=%v", a.Key, a.Value)
		return true
	})
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line+"\n")
	return err
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &logHandler{mu: h.mu, w: h.w, level: h.level, attrs: merged}
}

// WithGroup is accepted but flattened; the line format has no nesting.
func (h *logHandler) WithGroup(string) slog.Handler { return h }
