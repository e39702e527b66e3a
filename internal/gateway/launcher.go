package gateway

import (
	"fmt"
	"os"
	"strconv"
)

// Launcher spawns the gateway's operating-system process. Implemented by
// ProcessLauncher for real use; tests inject fakes.
type Launcher interface {
	// Launch starts the daemon with stdout and stderr redirected to the
	// two log files, detached from any foreground console. It returns as
	// soon as the spawn succeeds. Callers that need "is it up yet" must
	// poll the liveness probe.
	Launch(logPath, errorLogPath string) error
}

// ProcessLauncher launches the gateway in foreground mode
// (`openclaw gateway --port N --verbose`) with its output captured.
type ProcessLauncher struct {
	Binary   string
	Identity Identity
}

// Launch opens both log files (truncating existing content, so each start
// produces a fresh log and log retrieval always refers to the current
// run), wires them to the daemon's stdout and stderr, and spawns the
// process detached.
func (l ProcessLauncher) Launch(logPath, errorLogPath string) error {
	stdout, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open gateway log file: %w", err)
	}

	stderr, err := os.OpenFile(errorLogPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		stdout.Close()
		return fmt.Errorf("failed to open gateway error log file: %w", err)
	}

	cmd := daemonCommand(l.Binary, "gateway", "--port", strconv.Itoa(l.Identity.Port), "--verbose")
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.SysProcAttr = launchSysProcAttr()

	err = cmd.Start()

	// The child holds its own copies of the descriptors after spawn.
	stdout.Close()
	stderr.Close()

	if err != nil {
		return fmt.Errorf("failed to start gateway: %w", err)
	}

	// Detach fully: the daemon's lifetime is not ours to manage.
	return cmd.Process.Release()
}
