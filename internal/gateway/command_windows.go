//go:build windows

package gateway

import "os/exec"

// daemonCommand builds a command line for the given binary. On Windows the
// openclaw entry point is an npm shim (.cmd), so it has to run through the
// shell: `cmd /c openclaw ...`.
func daemonCommand(binary string, args ...string) *exec.Cmd {
	shellArgs := append([]string{"/c", binary}, args...)
	return exec.Command("cmd", shellArgs...)
}
