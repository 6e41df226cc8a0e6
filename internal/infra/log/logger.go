// Package log provides logging helpers.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bool64/ctxd"
)

// Config defines logger settings.
type Config struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// Logger implements ctxd.Logger with slog.
type Logger struct {
	sl *slog.Logger
}

var _ ctxd.Logger = &Logger{}

// New creates logger that writes to w, os.Stderr is used if w is nil.
func New(cfg Config, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var h slog.Handler

	switch strings.ToLower(cfg.Format) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	return &Logger{sl: slog.New(h)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) log(ctx context.Context, level slog.Level, msg string, keysAndValues []interface{}) {
	if !l.sl.Enabled(ctx, level) {
		return
	}

	l.sl.Log(ctx, level, msg, args(ctx, keysAndValues)...)
}

func args(ctx context.Context, keysAndValues []interface{}) []interface{} {
	fields := ctxd.Fields(ctx)
	res := make([]interface{}, 0, len(fields)+len(keysAndValues))
	res = append(res, fields...)

	return append(res, keysAndValues...)
}

// Debug logs a message.
func (l *Logger) Debug(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.log(ctx, slog.LevelDebug, msg, keysAndValues)
}

// Info logs a message.
func (l *Logger) Info(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.log(ctx, slog.LevelInfo, msg, keysAndValues)
}

// Important logs a message regardless of level.
func (l *Logger) Important(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.sl.Log(ctx, slog.LevelError+4, msg, args(ctx, keysAndValues)...)
}

// Warn logs a message.
func (l *Logger) Warn(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.log(ctx, slog.LevelWarn, msg, keysAndValues)
}

// Error logs a message.
func (l *Logger) Error(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.log(ctx, slog.LevelError, msg, keysAndValues)
}
