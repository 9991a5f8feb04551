//go:build linux

package sysguard

import (
	"context"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/halcyonlabs/lib-sysguard/sysguard/log"
)

// SetThreadName names the calling OS thread so it is identifiable in ps, top,
// and core dumps. Callers should pin the goroutine with runtime.LockOSThread
// first, otherwise the name lands on an arbitrary thread. Failure is
// downgraded to a logged warning.
func SetThreadName(ctx context.Context, name string) {
	buf, err := unix.BytePtrFromString(name)
	if err != nil {
		NewLoggerFromContext(ctx).Log(ctx, log.LevelWarn, "cannot set thread name",
			log.String("name", name), log.Err(err))

		return
	}

	if err := unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(buf)), 0, 0, 0); err != nil {
		NewLoggerFromContext(ctx).Log(ctx, log.LevelWarn, "cannot set thread name",
			log.String("name", name), log.Err(err))
	}
}
