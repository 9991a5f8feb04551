//go:build unix

package sig

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/halcyonlabs/lib-sysguard/sysguard/log"
)

const (
	// maxFrames bounds the backtrace snapshot.
	maxFrames = 50

	// fatalMsgCap is the fixed capacity of the pre-rendered debugger-attach
	// message. Rendered content must stay strictly shorter.
	fatalMsgCap = 256

	// DebugEnvVar marks debug mode: when set, the fatal handler pauses so a
	// debugger can be attached before the process terminates.
	DebugEnvVar = "SYSGUARD_DEBUG"

	// debuggerAttachPause is how long the faulting process waits in debug
	// mode. Blocking is acceptable: the process is already in a terminal
	// fault state.
	debuggerAttachPause = 30 * time.Second
)

// fatalSignals is the fatal track: signals indicating a process-corrupting
// fault. They are never re-armed after firing once.
var fatalSignals = []os.Signal{
	syscall.SIGSEGV,
	syscall.SIGBUS,
	syscall.SIGABRT,
	syscall.SIGILL,
	syscall.SIGFPE,
}

// fatalMsg holds the debugger-attach message, populated once before any
// fatal handler is installed. Never reallocated, so referencing it from
// handler context needs no allocation.
var (
	fatalMsg    [fatalMsgCap]byte
	fatalMsgLen int
)

// renderFatalMessage must run before SetFatalSignals installs handlers.
func renderFatalMessage(pid int) {
	pidStr := strconv.Itoa(pid)
	msg := "\nFatal signal! Attach debugger with:\n" +
		"sudo dlv attach " + pidStr + "\n or \n" +
		"sudo gdb --pid=" + pidStr + "\n"

	if len(msg) >= fatalMsgCap {
		msg = msg[:fatalMsgCap-1]
	}

	fatalMsgLen = copy(fatalMsg[:], msg)
}

func fatalMessageBytes() []byte {
	return fatalMsg[:fatalMsgLen]
}

// FatalMessage returns the rendered debugger-attach message. Not for use
// from handler context; Reporter uses the zero-copy byte view.
func FatalMessage() string {
	return string(fatalMessageBytes())
}

// Frame is one captured call-stack entry: the program counter and its
// textual description.
type Frame struct {
	PC   uintptr
	Desc string
}

// Reporter composes and emits the fatal-signal diagnostic. All collaborators
// are injectable so the sequence can be exercised without faulting the test
// process; zero values are replaced with the real OS facilities.
//
// The reporter must not acquire any lock ordinary application code might be
// holding when the signal lands. It logs only through the raw signal-safe
// path until the final best-effort warning.
type Reporter struct {
	StderrFD int
	PID      int
	Logger   log.Logger

	Getenv  func(key string) string
	Capture func(max int) []Frame
	Reset   func(sig os.Signal)
	Raise   func(pid int, sig syscall.Signal) error
	Sleep   func(d time.Duration)
	Writev  func(fd int, iovs [][]byte) (int, error)
}

// NewReporter returns a Reporter wired to the real OS facilities, warning
// through logger when the backtrace write fails.
func NewReporter(logger log.Logger) *Reporter {
	if logger == nil {
		logger = log.NewNop()
	}

	return &Reporter{
		StderrFD: syscall.Stderr,
		PID:      os.Getpid(),
		Logger:   logger,
		Getenv:   os.Getenv,
		Capture:  captureFrames,
		Reset:    func(sig os.Signal) { signal.Reset(sig) },
		Raise:    syscall.Kill,
		Sleep:    time.Sleep,
		Writev:   unix.Writev,
	}
}

// captureFrames snapshots up to max call-stack frames of the calling
// goroutine. It allocates bounded memory: safe here because the dispatcher
// goroutine runs in ordinary execution context, not inside an asynchronous
// C-style handler.
func captureFrames(max int) []Frame {
	pcs := make([]uintptr, max)

	n := runtime.Callers(3, pcs)
	if n == 0 {
		return nil
	}

	frames := make([]Frame, 0, n)
	iter := runtime.CallersFrames(pcs[:n])

	for {
		f, more := iter.Next()

		desc := f.Function
		if desc == "" {
			desc = "0x" + strconv.FormatUint(uint64(f.PC), 16)
		}

		if f.File != "" {
			desc += " " + f.File + ":" + strconv.Itoa(f.Line)
		}

		frames = append(frames, Frame{PC: f.PC, Desc: desc})

		if !more || len(frames) == maxFrames {
			break
		}
	}

	return frames
}

// Handle is the fatal-signal handler body. It never returns control to
// normal execution: the final re-raise lets the OS default action (core
// dump, termination) complete. Every step after the first log line is
// best-effort.
func (r *Reporter) Handle(sig syscall.Signal) {
	log.SignalLogPrefix()
	log.SignalLog(" Fatal signal received: ")
	log.SignalLog(SignalName(sig))
	log.SignalLog("\n")

	if r.Getenv(DebugEnvVar) != "" {
		log.SignalLogBytes(fatalMessageBytes())
		r.Sleep(debuggerAttachPause)
	}

	// A second identical fault from here on takes the OS default action
	// instead of re-entering this handler.
	r.Reset(sig)

	if frames := r.Capture(maxFrames); len(frames) > 0 {
		r.dump(frames)
	}

	_ = r.Raise(r.PID, sig)
}

// dump issues exactly one vectored write to stderr: the header line followed
// by one newline-terminated line per frame.
func (r *Reporter) dump(frames []Frame) {
	header := make([]byte, 0, 32)
	header = append(header, "Backtrace "...)
	header = strconv.AppendInt(header, int64(r.PID), 10)
	header = append(header, ':', '\n')

	newline := []byte{'\n'}

	iovs := make([][]byte, 0, 2*len(frames)+1)
	iovs = append(iovs, header)

	for _, f := range frames {
		iovs = append(iovs, []byte(f.Desc), newline)
	}

	if _, err := r.Writev(r.StderrFD, iovs); err != nil {
		// This secondary report may itself be unreliable with a corrupted
		// heap; accepted.
		r.Logger.Log(context.Background(), log.LevelWarn,
			"failed to dump backtrace to stderr", log.Err(err))
	}
}

// SetFatalSignals renders the debugger-attach message, then installs the
// fatal track. The returned stop function uninstalls the handlers for tests.
func SetFatalSignals(logger log.Logger) (stop func()) {
	renderFatalMessage(os.Getpid())

	reporter := NewReporter(logger)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, fatalSignals...)

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

				reporter.Handle(sysSig)
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
