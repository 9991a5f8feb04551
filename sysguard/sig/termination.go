//go:build unix

package sig

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/halcyonlabs/lib-sysguard/sysguard/log"
)

// terminationFlag is the one piece of global state every thread observes.
// Single writer (first termination delivery), multiple readers; it only ever
// transitions false to true and is never reset, so stale reads are harmless.
var terminationFlag atomic.Bool

// terminationSignals is the termination track: signals conventionally
// requesting graceful shutdown.
var terminationSignals = []os.Signal{
	syscall.SIGTERM,
	syscall.SIGINT,
	syscall.SIGQUIT,
	syscall.SIGHUP,
}

// ShutdownRequested reports whether a termination-class signal has been
// observed. Readable from any goroutine at any time.
func ShutdownRequested() bool {
	return terminationFlag.Load()
}

// SetTerminationSignals installs the termination track. The first delivery of
// any termination-class signal sets the shutdown flag and logs the signal
// name through the signal-safe path; subsequent deliveries are no-ops with
// respect to the flag. The returned stop function uninstalls the handlers,
// primarily for tests; production processes keep them for life.
func SetTerminationSignals() (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, terminationSignals...)

	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case s := <-ch:
				sysSig, ok := s.(syscall.Signal)
				if !ok {
					continue
				}

				handleTerminationSignal(sysSig)
			}
		}
	}()

	var once sync.Once

	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
		})
	}
}

func handleTerminationSignal(sig syscall.Signal) {
	if !terminationFlag.CompareAndSwap(false, true) {
		return
	}

	log.SignalLogPrefix()
	log.SignalLog(" Termination signal received: ")
	log.SignalLog(SignalName(sig))
	log.SignalLog("\n")
}
