package gateway

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ControlClient drives the gateway through the openclaw binary's own
// lifecycle verbs. The supervisor launches the daemon directly (start must
// guarantee log redirection and detachment), but it never terminates or
// inspects it directly: once detached, the daemon may live outside our
// process tree and there is no PID worth trusting.
type ControlClient interface {
	// Stop asks the daemon to shut down via `openclaw daemon stop`.
	// Returns the daemon's own message on success.
	Stop() (string, error)

	// Restart delegates to `openclaw daemon restart`.
	Restart() (string, error)

	// Doctor runs the daemon's self-diagnostic verb and forwards its
	// output verbatim.
	Doctor() (string, error)

	// Version returns the trimmed `openclaw --version` output, or "" on
	// any failure. Version absence is informational, never an error.
	Version() string

	// Installed reports whether the openclaw binary resolves on PATH.
	// Infallible by contract: any lookup error collapses to false.
	Installed() bool
}

// BinaryControlClient implements ControlClient by invoking the openclaw
// binary. Command lines are built through the platform command builder
// (plain exec on Unix, `cmd /c` on Windows).
type BinaryControlClient struct {
	binary string
}

// NewBinaryControlClient creates a control client for the named daemon
// binary (usually "openclaw", resolved via PATH at invocation time).
func NewBinaryControlClient(binary string) *BinaryControlClient {
	return &BinaryControlClient{binary: binary}
}

func (c *BinaryControlClient) Stop() (string, error)    { return c.control("stop") }
func (c *BinaryControlClient) Restart() (string, error) { return c.control("restart") }

// control runs `openclaw daemon <action>` and interprets the outcome the way
// a human operator would want it relayed: the daemon's stdout on success
// (with a generic fallback when it prints nothing), its stderr verbatim on
// failure. Stopping an already-stopped daemon is tolerated; the daemon's
// own failure message becomes the result.
func (c *BinaryControlClient) control(action string) (string, error) {
	cmd := daemonCommand(c.binary, "daemon", action)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.New(msg)
		}
		return "", fmt.Errorf("%s daemon %s failed: %w", c.binary, action, err)
	}

	msg := strings.TrimSpace(stdout.String())
	if msg == "" {
		msg = fmt.Sprintf("Gateway %s command sent", action)
	}
	return msg, nil
}

func (c *BinaryControlClient) Doctor() (string, error) {
	cmd := daemonCommand(c.binary, "doctor")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	outStr := stdout.String()
	errStr := strings.TrimSpace(stderr.String())

	if err == nil {
		if strings.TrimSpace(outStr) == "" {
			return "Doctor finished with no output", nil
		}
		return outStr, nil
	}

	// Preserve whatever diagnostic text the tool produced; the supervisor
	// does not interpret it.
	msg := "openclaw doctor failed"
	if errStr != "" {
		msg += "\n\n" + errStr
	}
	if trimmed := strings.TrimSpace(outStr); trimmed != "" {
		msg += "\n\n" + trimmed
	}
	return "", errors.New(msg)
}

func (c *BinaryControlClient) Version() string {
	cmd := daemonCommand(c.binary, "--version")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return ""
	}
	return strings.TrimSpace(stdout.String())
}

func (c *BinaryControlClient) Installed() bool {
	_, err := exec.LookPath(c.binary)
	return err == nil
}
