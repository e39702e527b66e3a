//go:build unix

package gateway

import "syscall"

// launchSysProcAttr returns platform-specific attributes for the detached
// gateway spawn. On Unix the daemon gets its own process group so it
// survives the supervisor exiting.
func launchSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid: true,
	}
}
