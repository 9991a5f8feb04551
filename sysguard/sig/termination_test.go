//go:build unix

package sig

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetTerminationForTest returns the flag to its pre-signal state. Production
// code never resets it.
func resetTerminationForTest(t *testing.T) {
	t.Helper()
	terminationFlag.Store(false)
	t.Cleanup(func() { terminationFlag.Store(false) })
}

func TestShutdownRequested_FalseBeforeAnySignal(t *testing.T) {
	resetTerminationForTest(t)

	assert.False(t, ShutdownRequested())
}

func TestHandleTerminationSignal_SetsFlagIrreversibly(t *testing.T) {
	resetTerminationForTest(t)

	handleTerminationSignal(syscall.SIGTERM)
	assert.True(t, ShutdownRequested())

	// Subsequent deliveries are no-ops with respect to the flag.
	handleTerminationSignal(syscall.SIGINT)
	handleTerminationSignal(syscall.SIGHUP)
	assert.True(t, ShutdownRequested())
}

func TestTerminationTrack_CoversExactlyTheTerminationClass(t *testing.T) {
	want := map[syscall.Signal]bool{
		syscall.SIGTERM: true,
		syscall.SIGINT:  true,
		syscall.SIGQUIT: true,
		syscall.SIGHUP:  true,
	}

	assert.Len(t, terminationSignals, len(want))

	for _, s := range terminationSignals {
		sysSig, ok := s.(syscall.Signal)
		assert.True(t, ok)
		assert.True(t, want[sysSig], "unexpected signal %v in termination track", s)
	}

	// Signals without a dedicated entry must never reach the flag.
	assert.False(t, want[syscall.SIGUSR1])
}

func TestSetTerminationSignals_StopIsIdempotent(t *testing.T) {
	resetTerminationForTest(t)

	stop := SetTerminationSignals()
	stop()
	stop()

	assert.False(t, ShutdownRequested())
}
