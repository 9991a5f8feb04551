//go:build !linux

package sysguard

import "context"

// SetThreadName is a no-op on platforms without prctl(PR_SET_NAME).
func SetThreadName(_ context.Context, _ string) {}
