// Package logger configures the process-wide slog logger and carries request
// scoped loggers through context.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/limbo/calai/pkg/cleanup"
	"gopkg.in/lumberjack.v2"
)

type Options struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type ctxKey struct{}

// Init builds a JSON logger over stdout and, when File is set, a rotating file,
// then installs it as slog default.
func Init(opts Options) *slog.Logger {
	writers := []io.Writer{os.Stdout}
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			LocalTime:  true,
		}
		writers = append(writers, lj)
		cleanup.Register(&cleanup.Job{
			Name: "closing log file",
			F:    lj.Close,
		})
	}
	l := New(io.MultiWriter(writers...), opts.Level)
	slog.SetDefault(l)
	l.Info("logger initialized", slog.String("level", opts.Level), slog.String("file", opts.File))
	return l
}

func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext falls back to slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
