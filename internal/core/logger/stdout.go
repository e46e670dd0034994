package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
)

var slogLevels = map[LogLevel]slog.Level{
	LogLevelDebug: slog.LevelDebug,
	LogLevelInfo:  slog.LevelInfo,
	LogLevelWarn:  slog.LevelWarn,
	LogLevelError: slog.LevelError,
	LogLevelFatal: slog.LevelError + 4,
}

type StdoutLogger struct {
	logger *slog.Logger
	exit   func(code int)
}

func initStdoutLogger(serviceName string) (Logger, error) {
	return newStdoutLogger(os.Stdout, serviceName), nil
}

func newStdoutLogger(w io.Writer, serviceName string) *StdoutLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && a.Value.Any() == slogLevels[LogLevelFatal] {
				return slog.String(slog.LevelKey, string(LogLevelFatal))
			}
			return a
		},
	})

	return &StdoutLogger{
		logger: slog.New(handler).With(slog.String("service", serviceName)),
		exit:   os.Exit,
	}
}

func (l *StdoutLogger) Log(ctx context.Context, entry LogEntry) {
	keys := make([]string, 0, len(entry.Attributes))
	for key := range entry.Attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys)+1)
	for _, key := range keys {
		attrs = append(attrs, slog.Any(key, entry.Attributes[key]))
	}
	if entry.Error != nil {
		attrs = append(attrs, slog.String("error", entry.Error.Error()))
	}

	l.logger.LogAttrs(ctx, slogLevels[entry.Level], entry.Message, attrs...)

	if entry.Level == LogLevelFatal {
		l.exit(1)
	}
}

func (l *StdoutLogger) Shutdown(context.Context) error {
	return nil
}
