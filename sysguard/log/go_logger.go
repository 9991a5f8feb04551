package log

import (
	"context"
	"fmt"
	stdlog "log"
	"strings"
)

// GoLogger is the Go built-in (log) implementation of the Logger interface.
// It renders fields as key=value pairs after the message.
//
// All string values are sanitized to prevent log injection (CWE-117).
type GoLogger struct {
	out    *stdlog.Logger
	fields []Field
	groups []string
	Level  Level
}

// Compile-time assertion: *GoLogger implements Logger.
var _ Logger = (*GoLogger)(nil)

// NewGoLogger creates a GoLogger writing through the standard library default
// logger at the given verbosity ceiling.
func NewGoLogger(level Level) *GoLogger {
	return &GoLogger{out: stdlog.Default(), Level: level}
}

func (l *GoLogger) writer() *stdlog.Logger {
	if l == nil || l.out == nil {
		return stdlog.Default()
	}

	return l.out
}

// Log implements Logger.
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	parts := make([]string, 0, len(l.fields)+len(fields)+2)
	parts = append(parts, fmt.Sprintf("[%s]", level.String()))
	parts = append(parts, sanitizeLogString(msg))

	for _, f := range l.fields {
		parts = append(parts, l.renderField(f))
	}

	for _, f := range fields {
		parts = append(parts, l.renderField(f))
	}

	l.writer().Print(strings.Join(parts, " "))
}

func (l *GoLogger) renderField(f Field) string {
	key := f.Key
	if len(l.groups) > 0 {
		key = strings.Join(l.groups, ".") + "." + key
	}

	if s, ok := f.Value.(string); ok {
		return fmt.Sprintf("%s=%s", key, sanitizeLogString(s))
	}

	return fmt.Sprintf("%s=%v", key, f.Value)
}

// With returns a child logger with additional structured fields.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	if l == nil {
		return &GoLogger{}
	}

	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)

	return &GoLogger{out: l.out, fields: merged, groups: l.groups, Level: l.Level}
}

// WithGroup returns a child logger that prefixes subsequent field keys with
// the group name.
//
//nolint:ireturn
func (l *GoLogger) WithGroup(name string) Logger {
	if l == nil {
		return &GoLogger{}
	}

	groups := make([]string, 0, len(l.groups)+1)
	groups = append(groups, l.groups...)
	groups = append(groups, name)

	return &GoLogger{out: l.out, fields: l.fields, groups: groups, Level: l.Level}
}

// Enabled reports whether a log at the given level would be emitted.
func (l *GoLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}

// Sync is a no-op for the standard library backend.
func (l *GoLogger) Sync(_ context.Context) error { return nil }
