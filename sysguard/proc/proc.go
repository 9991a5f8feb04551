//go:build unix

package proc

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"syscall"

	"github.com/shirou/gopsutil/process"

	"github.com/halcyonlabs/lib-sysguard/sysguard"
	"github.com/halcyonlabs/lib-sysguard/sysguard/log"
)

// MemoryUnparseable is the sentinel GetMemoryUsage returns when the lookup
// tool ran but its output was not a number (typically an invalid or dead pid).
const MemoryUnparseable = -1

// ErrUnparseableOutput indicates the metrics tool produced non-numeric output.
var ErrUnparseableOutput = errors.New("memory lookup output is not numeric")

// MetricsProvider supplies resident memory for a process. Platforms without a
// shell-based introspection tool can substitute a native implementation
// without changing the GetMemoryUsage contract.
//
//go:generate mockgen --destination=proc_mock.go --package=proc . MetricsProvider
type MetricsProvider interface {
	ResidentMemoryKB(pid int) (int, error)
}

// PsProvider reads resident memory through ps(1).
type PsProvider struct {
	Cmd sysguard.SyscmdI
}

// ResidentMemoryKB shells out `ps o rss= -p <pid>` and parses the result.
// TODO: report PSS instead of RSS once a portable source exists.
func (p PsProvider) ResidentMemoryKB(pid int) (int, error) {
	cmd := p.Cmd
	if cmd == nil {
		cmd = &sysguard.Syscmd{}
	}

	out, err := cmd.ExecCmd("ps", "o", "rss=", "-p", strconv.Itoa(pid))
	if err != nil {
		return 0, fmt.Errorf("launch ps: %w", err)
	}

	kb, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparseableOutput, strings.TrimSpace(string(out)))
	}

	return kb, nil
}

// NativeProvider reads resident memory through the OS process APIs, with no
// external tool involved.
type NativeProvider struct{}

// ResidentMemoryKB returns the process RSS in kilobytes.
func (NativeProvider) ResidentMemoryKB(pid int) (int, error) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return 0, fmt.Errorf("open process %d: %w", pid, err)
	}

	info, err := p.MemoryInfo()
	if err != nil {
		return 0, fmt.Errorf("memory info for %d: %w", pid, err)
	}

	return int(info.RSS / 1024), nil
}

// GetMemoryUsage returns the resident memory of pid in kilobytes using the
// default ps-based provider. It returns 0 when the tool cannot be launched
// and MemoryUnparseable when the output is not a number. May block on
// process creation; never call from signal context.
func GetMemoryUsage(ctx context.Context, pid int) int {
	return getMemoryUsage(ctx, PsProvider{}, pid)
}

func getMemoryUsage(ctx context.Context, provider MetricsProvider, pid int) int {
	kb, err := provider.ResidentMemoryKB(pid)
	if err != nil {
		if errors.Is(err, ErrUnparseableOutput) {
			sysguard.NewLoggerFromContext(ctx).Log(ctx, log.LevelWarn,
				"trying to find memory of invalid/dead pid", log.Int("pid", pid))

			return MemoryUnparseable
		}

		return 0
	}

	return kb
}

// RequestTermination asks the OS to deliver SIGTERM to pid. Termination
// requests are inherently best-effort: any failure is downgraded to a logged
// warning, never propagated.
func RequestTermination(ctx context.Context, pid int) {
	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
		sysguard.NewLoggerFromContext(ctx).Log(ctx, log.LevelWarn,
			"termination request failed", log.Int("pid", pid), log.Err(err))
	}
}
