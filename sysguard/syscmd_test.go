//go:build unit

package sysguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyscmd_ExecCmd(t *testing.T) {
	t.Parallel()

	cmd := &Syscmd{}

	out, err := cmd.ExecCmd("echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestSyscmd_ExecCmd_MissingBinary(t *testing.T) {
	t.Parallel()

	cmd := &Syscmd{}

	_, err := cmd.ExecCmd("definitely-not-a-real-binary-xyz")
	require.Error(t, err)
}
