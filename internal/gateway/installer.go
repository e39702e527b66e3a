package gateway

import (
	"bytes"
	"errors"
	"strings"
)

// npmPackage is the published name of the gateway daemon's npm package.
const npmPackage = "openclaw"

// Install installs the gateway daemon globally through npm. The call blocks
// until npm exits; npm emits no machine-readable progress, so responsive
// callers run this off their interaction thread.
//
// On failure the installer's stderr is returned verbatim so the operator
// sees npm's actual complaint.
func (s *Supervisor) Install() (string, error) {
	cmd := daemonCommand("npm", "install", "-g", npmPackage)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.New(msg)
		}
		return "", err
	}
	return "OpenClaw installed successfully", nil
}
