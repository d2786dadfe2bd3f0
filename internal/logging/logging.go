package logging

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

// Setup installs a JSON slog handler as the process default for both the
// server and the migrate command. The level comes from the LOG_LEVEL
// environment variable (DEBUG, INFO, WARN, ERROR; default INFO), and
// ERROR-level records carry a stack trace.
func Setup() {
	json := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     parseLevel(os.Getenv("LOG_LEVEL")),
		AddSource: true,
	})
	slog.SetDefault(slog.New(&errorStackHandler{Handler: json}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Fatal logs at Error level and exits with code 1.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

// errorStackHandler appends a stack trace to ERROR+ records so storage and
// filesystem failures are diagnosable from the log alone.
type errorStackHandler struct {
	slog.Handler
}

func (h *errorStackHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stacktrace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *errorStackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &errorStackHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *errorStackHandler) WithGroup(name string) slog.Handler {
	return &errorStackHandler{Handler: h.Handler.WithGroup(name)}
}
