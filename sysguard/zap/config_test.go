//go:build unit

package zap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	logpkg "github.com/halcyonlabs/lib-sysguard/sysguard/log"
)

func TestNewWithValidEnvironments(t *testing.T) {
	t.Parallel()

	environments := []Environment{
		EnvironmentProduction,
		EnvironmentStaging,
		EnvironmentDevelopment,
		EnvironmentLocal,
	}

	for _, env := range environments {
		t.Run(string(env), func(t *testing.T) {
			t.Parallel()

			logger, err := New(Config{Environment: env})
			require.NoError(t, err)
			require.NotNil(t, logger)

			assert.NotNil(t, logger.Raw())
		})
	}
}

func TestNewWithInvalidEnvironment(t *testing.T) {
	t.Parallel()

	logger, err := New(Config{Environment: "qa"})
	require.Error(t, err)
	assert.Nil(t, logger)
	assert.Contains(t, err.Error(), "invalid environment")
}

func TestNewWithEmptyEnvironment(t *testing.T) {
	t.Parallel()

	logger, err := New(Config{})
	require.Error(t, err)
	assert.Nil(t, logger)
}

func TestNewWithExplicitLevel(t *testing.T) {
	t.Parallel()

	logger, err := New(Config{Environment: EnvironmentProduction, Level: "error"})
	require.NoError(t, err)

	assert.Equal(t, zapcore.ErrorLevel, logger.Level().Level())
	assert.False(t, logger.Enabled(logpkg.LevelInfo))
	assert.True(t, logger.Enabled(logpkg.LevelError))
}

func TestNewWithInvalidLevel(t *testing.T) {
	t.Parallel()

	logger, err := New(Config{Environment: EnvironmentProduction, Level: "loud"})
	require.Error(t, err)
	assert.Nil(t, logger)
	assert.Contains(t, err.Error(), "invalid level")
}

func TestNewDefaultLevelsByEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		environment Environment
		expected    zapcore.Level
	}{
		{EnvironmentProduction, zapcore.InfoLevel},
		{EnvironmentStaging, zapcore.InfoLevel},
		{EnvironmentDevelopment, zapcore.DebugLevel},
		{EnvironmentLocal, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.environment), func(t *testing.T) {
			t.Parallel()

			logger, err := New(Config{Environment: tt.environment})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, logger.Level().Level())
		})
	}
}

func TestAtomicLevelAdjustsAtRuntime(t *testing.T) {
	t.Parallel()

	logger, err := New(Config{Environment: EnvironmentProduction})
	require.NoError(t, err)

	assert.False(t, logger.Enabled(logpkg.LevelDebug))

	logger.Level().SetLevel(zapcore.DebugLevel)
	assert.True(t, logger.Enabled(logpkg.LevelDebug))
}

func TestNewNopDropsEverything(t *testing.T) {
	t.Parallel()

	logger := NewNop()
	require.NotNil(t, logger)

	assert.NotPanics(t, func() {
		logger.Log(context.Background(), logpkg.LevelError, "dropped")
	})
	assert.NoError(t, logger.Sync(context.Background()))
}
