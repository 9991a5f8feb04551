package log

import "context"

// NopLogger discards everything. It is what NewLoggerFromContext hands out
// when a context carries no logger, so best-effort warning paths never have
// to nil-check.
type NopLogger struct{}

// NewNop returns a Logger that drops every event.
func NewNop() Logger {
	return &NopLogger{}
}

// Log discards the event.
func (l *NopLogger) Log(_ context.Context, _ Level, _ string, _ ...Field) {}

// With discards the fields and returns the receiver.
//
//nolint:ireturn
func (l *NopLogger) With(_ ...Field) Logger {
	return l
}

// WithGroup discards the group and returns the receiver.
//
//nolint:ireturn
func (l *NopLogger) WithGroup(_ string) Logger {
	return l
}

// Enabled reports false for every level.
func (l *NopLogger) Enabled(_ Level) bool {
	return false
}

// Sync has nothing to flush.
func (l *NopLogger) Sync(_ context.Context) error { return nil }
