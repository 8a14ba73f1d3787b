package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"
)

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stdout)
)

// SetOutput redirects log lines to w and returns a function restoring the
// previous destination.
func SetOutput(w io.Writer) (restore func()) {
	mu.Lock()
	prev := logger
	logger = newLogger(w)
	mu.Unlock()
	return func() {
		mu.Lock()
		logger = prev
		mu.Unlock()
	}
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	write(slog.LevelInfo, msg, fields)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	write(slog.LevelWarn, msg, fields)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	write(slog.LevelError, msg, fields)
}

func write(level slog.Level, msg string, fields map[string]any) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}

	mu.RLock()
	l := logger
	mu.RUnlock()
	l.LogAttrs(context.Background(), level, msg, attrs...)
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.String("ts", a.Value.Time().UTC().Format(time.RFC3339))
			case slog.LevelKey:
				return slog.String("level", levelName(a.Value.Any()))
			}
			return a
		},
	}))
}

func levelName(v any) string {
	level, ok := v.(slog.Level)
	if !ok {
		return "info"
	}
	switch {
	case level >= slog.LevelError:
		return "error"
	case level >= slog.LevelWarn:
		return "warn"
	case level >= slog.LevelInfo:
		return "info"
	default:
		return "debug"
	}
}
