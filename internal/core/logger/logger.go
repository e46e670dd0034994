// Package logger is the process-wide logging facade. Backends are slog on stdout during
// development and the OpenTelemetry log SDK in production.
package logger

import (
	"context"
	"strings"
	"time"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelFatal LogLevel = "FATAL"
)

var levelRank = map[LogLevel]int{
	LogLevelDebug: 0,
	LogLevelInfo:  1,
	LogLevelWarn:  2,
	LogLevelError: 3,
	LogLevelFatal: 4,
}

// ParseLevel accepts any casing and falls back to INFO.
func ParseLevel(raw string) LogLevel {
	level := LogLevel(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := levelRank[level]; !ok {
		return LogLevelInfo
	}
	return level
}

type attributes = map[string]any

type LogEntry struct {
	Level      LogLevel
	Message    string
	Attributes attributes
	Error      error
	Timestamp  time.Time
}

type Logger interface {
	Log(ctx context.Context, entry LogEntry)
	Shutdown(ctx context.Context) error
}

type Options struct {
	Endpoint    string
	ServiceName string
	Production  bool
	Level       LogLevel
}

var (
	globalLogger Logger = &noopLogger{}
	minLevel            = LogLevelDebug
)

type contextKey struct{}

// With returns a context whose log entries carry attrs. Attributes passed at the call
// site win over the ones stored in the context.
func With(ctx context.Context, attrs attributes) context.Context {
	merged := make(attributes, len(attrs))
	for k, v := range fromContext(ctx) {
		merged[k] = v
	}
	for k, v := range attrs {
		merged[k] = v
	}
	return context.WithValue(ctx, contextKey{}, merged)
}

func fromContext(ctx context.Context) attributes {
	if ctx == nil {
		return nil
	}
	attrs, _ := ctx.Value(contextKey{}).(attributes)
	return attrs
}

func newLogEntry(ctx context.Context, level LogLevel, message string, err error, attrs attributes) LogEntry {
	scoped := fromContext(ctx)
	if len(scoped) > 0 {
		merged := make(attributes, len(scoped)+len(attrs))
		for k, v := range scoped {
			merged[k] = v
		}
		for k, v := range attrs {
			merged[k] = v
		}
		attrs = merged
	}

	return LogEntry{
		Level:      level,
		Message:    message,
		Attributes: attrs,
		Error:      err,
		Timestamp:  time.Now(),
	}
}

func emit(ctx context.Context, level LogLevel, message string, err error, attrs attributes) {
	// fatal always goes through so the backend can exit
	if level != LogLevelFatal && levelRank[level] < levelRank[minLevel] {
		return
	}
	globalLogger.Log(ctx, newLogEntry(ctx, level, message, err, attrs))
}

func Debug(ctx context.Context, message string, attrs attributes) {
	emit(ctx, LogLevelDebug, message, nil, attrs)
}

func Info(ctx context.Context, message string, attrs attributes) {
	emit(ctx, LogLevelInfo, message, nil, attrs)
}

func Warn(ctx context.Context, message string, attrs attributes) {
	emit(ctx, LogLevelWarn, message, nil, attrs)
}

func Error(ctx context.Context, message string, err error, attrs attributes) {
	emit(ctx, LogLevelError, message, err, attrs)
}

func Fatal(ctx context.Context, message string, err error, attrs attributes) {
	emit(ctx, LogLevelFatal, message, err, attrs)
}

func Log(ctx context.Context, entry LogEntry) {
	emit(ctx, entry.Level, entry.Message, entry.Error, entry.Attributes)
}

func Shutdown(ctx context.Context) error {
	return globalLogger.Shutdown(ctx)
}

// Use swaps the backend and returns a func restoring the previous one.
func Use(l Logger, level LogLevel) (restore func()) {
	previous, previousLevel := globalLogger, minLevel
	globalLogger, minLevel = l, level
	return func() {
		globalLogger, minLevel = previous, previousLevel
	}
}

func Initialize(opts Options) error {
	var (
		l   Logger
		err error
	)

	if opts.Production {
		l, err = initializeOtelLogger(opts.Endpoint, opts.ServiceName)
	} else {
		l, err = initStdoutLogger(opts.ServiceName)
	}

	if err != nil {
		return err
	}

	level := opts.Level
	if level == "" {
		level = LogLevelInfo
	}
	Use(l, level)
	return nil
}
