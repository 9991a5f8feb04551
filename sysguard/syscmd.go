package sysguard

import "os/exec"

// SyscmdI abstracts command execution for testing and composition.
//
//go:generate mockgen --destination=syscmd_mock.go --package=sysguard . SyscmdI
type SyscmdI interface {
	ExecCmd(name string, arg ...string) ([]byte, error)
}

// Syscmd is the default SyscmdI implementation backed by os/exec.
type Syscmd struct{}

// ExecCmd runs a command and returns its stdout bytes.
func (r *Syscmd) ExecCmd(name string, arg ...string) ([]byte, error) {
	return exec.Command(name, arg...).Output()
}
