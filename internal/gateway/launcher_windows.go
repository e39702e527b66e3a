//go:build windows

package gateway

import "syscall"

// CREATE_NO_WINDOW keeps the spawned daemon from flashing a console window.
const createNoWindow = 0x08000000

// launchSysProcAttr returns platform-specific attributes for the detached
// gateway spawn.
func launchSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: createNoWindow,
	}
}
