package sysguard

import (
	"context"

	"github.com/halcyonlabs/lib-sysguard/sysguard/log"
)

type customContextKey string

// CustomContextKey is the context key used to store CustomContextKeyValue.
var CustomContextKey = customContextKey("custom_context")

// CustomContextKeyValue holds the process-scoped facilities attached to a
// context. Only logging travels this way; everything else this library needs
// is passed explicitly.
type CustomContextKeyValue struct {
	Logger log.Logger
}

// NewLoggerFromContext extracts the Logger stored in ctx, or a no-op logger
// when none was attached.
//
//nolint:ireturn
func NewLoggerFromContext(ctx context.Context) log.Logger {
	if values, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok &&
		values.Logger != nil {
		return values.Logger
	}

	return &log.NopLogger{}
}

// ContextWithLogger returns a child context carrying logger.
func ContextWithLogger(ctx context.Context, logger log.Logger) context.Context {
	values, _ := ctx.Value(CustomContextKey).(*CustomContextKeyValue)
	if values == nil {
		values = &CustomContextKeyValue{}
	}

	values.Logger = logger

	return context.WithValue(ctx, CustomContextKey, values)
}
