//go:build unit

package sysguard

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenvOrDefault_WithValue(t *testing.T) {
	key := "TEST_GETENV_OR_DEFAULT"
	expected := "test-value"

	t.Setenv(key, expected)

	assert.Equal(t, expected, GetenvOrDefault(key, "default"))
}

func TestGetenvOrDefault_WithDefault(t *testing.T) {
	key := "TEST_GETENV_OR_DEFAULT_MISSING"

	// Register cleanup, then unset.
	t.Setenv(key, "")
	os.Unsetenv(key)

	assert.Equal(t, "default-value", GetenvOrDefault(key, "default-value"))
}

func TestGetenvOrDefault_EmptyFallsBack(t *testing.T) {
	key := "TEST_GETENV_OR_DEFAULT_EMPTY"

	t.Setenv(key, "")

	assert.Equal(t, "fallback", GetenvOrDefault(key, "fallback"))
}

func TestWindowingAvailable(t *testing.T) {
	t.Setenv("DISPLAY", ":0")
	assert.True(t, WindowingAvailable())

	// An empty marker still counts as present.
	t.Setenv("DISPLAY", "")
	assert.True(t, WindowingAvailable())

	os.Unsetenv("DISPLAY")
	assert.False(t, WindowingAvailable())
}
