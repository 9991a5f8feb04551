//go:build unit

package sysguard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonlabs/lib-sysguard/sysguard/log"
)

func TestContextWithLogger_RoundTrip(t *testing.T) {
	t.Parallel()

	logger := log.NewGoLogger(log.LevelDebug)

	ctx := ContextWithLogger(context.Background(), logger)

	got := NewLoggerFromContext(ctx)
	require.NotNil(t, got)
	assert.Same(t, log.Logger(logger), got)
}

func TestNewLoggerFromContext_FallsBackToNop(t *testing.T) {
	t.Parallel()

	got := NewLoggerFromContext(context.Background())

	require.NotNil(t, got)
	assert.IsType(t, &log.NopLogger{}, got)
	assert.False(t, got.Enabled(log.LevelError))
}
