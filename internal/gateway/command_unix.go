//go:build unix

package gateway

import "os/exec"

// daemonCommand builds a command line for the given binary. On Unix the
// binary is executed directly and resolved via PATH.
func daemonCommand(binary string, args ...string) *exec.Cmd {
	return exec.Command(binary, args...)
}
