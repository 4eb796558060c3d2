//go:build !windows

// Package process terminates the headless browser and its helper processes.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the whole process group led by pid.
// Chrome forks renderer and GPU helpers that outlive the parent otherwise.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
