//go:build unix

package log

import (
	"os"
	"sync"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
)

// signalBufCap bounds a single raw emission. Longer content is truncated
// rather than split, so one call stays one write.
const signalBufCap = 1024

var (
	// signalFD is the descriptor the raw path writes to. Replaceable for
	// tests; stderr by default.
	signalFD atomic.Int32

	// signalBuf exists so the raw path never converts a string to a fresh
	// byte slice. signalMu is private to this path and never held across
	// anything but the copy and the write, so it cannot deadlock a handler.
	signalMu  sync.Mutex
	signalBuf [signalBufCap]byte
)

func init() {
	signalFD.Store(int32(syscall.Stderr))
}

// SetSignalLogFD redirects the raw signal-safe log path to fd.
func SetSignalLogFD(fd int) {
	signalFD.Store(int32(fd))
}

// SignalLog emits msg through a single raw write without allocating.
// It is the only logging call permitted from signal-handling context.
func SignalLog(msg string) {
	signalMu.Lock()
	defer signalMu.Unlock()

	n := copy(signalBuf[:], msg)
	_, _ = unix.Write(int(signalFD.Load()), signalBuf[:n])
}

// SignalLogBytes is SignalLog for pre-rendered byte content.
func SignalLogBytes(b []byte) {
	_, _ = unix.Write(int(signalFD.Load()), b)
}

// SignalLogNumber renders n in decimal and emits it without allocating.
func SignalLogNumber(n int) {
	var tmp [21]byte

	pos := len(tmp)
	neg := n < 0

	if neg {
		n = -n
	}

	for {
		pos--
		tmp[pos] = byte('0' + n%10)
		n /= 10

		if n == 0 {
			break
		}
	}

	if neg {
		pos--
		tmp[pos] = '-'
	}

	_, _ = unix.Write(int(signalFD.Load()), tmp[pos:])
}

// SignalLogPrefix emits the fixed prefix identifying signal-context lines.
func SignalLogPrefix() {
	SignalLog("sysguard[")
	SignalLogNumber(os.Getpid())
	SignalLog("]")
}
