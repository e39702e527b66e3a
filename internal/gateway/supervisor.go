package gateway

import (
	"net/url"
	"os"

	"github.com/openclaw/clawctl/internal/config"
)

// ProfileEnvVar optionally supplies a human-readable profile name surfaced
// in diagnostics. It is display-only and never used for addressing.
const ProfileEnvVar = "OPENCLAW_PROFILE"

// Supervisor is the gateway lifecycle controller. It holds no mutable state:
// every operation recomputes what it needs from disk and network, so
// concurrent invocations from multiple callers are independent.
type Supervisor struct {
	identity Identity
	paths    config.Paths
	control  ControlClient
	launcher Launcher
}

// NewSupervisor wires a supervisor from its injected collaborators.
func NewSupervisor(identity Identity, paths config.Paths, control ControlClient, launcher Launcher) *Supervisor {
	return &Supervisor{
		identity: identity,
		paths:    paths,
		control:  control,
		launcher: launcher,
	}
}

// Identity returns the supervised daemon's address.
func (s *Supervisor) Identity() Identity { return s.identity }

// Status probes liveness and returns a fresh snapshot. Infallible.
func (s *Supervisor) Status() Status {
	return Status{
		Running:      s.identity.IsRunning(),
		Port:         s.identity.Port,
		DashboardURL: s.identity.BaseURL(),
	}
}

// Start launches the gateway unless the probe already sees a listener.
// Starting an already-running gateway is a successful no-op.
//
// Two concurrent Start calls may both launch; the second daemon loses the
// port bind and exits on its own, so a "starting" message does not guarantee
// a unique instance.
func (s *Supervisor) Start() (string, error) {
	if s.identity.IsRunning() {
		return "Gateway is already running", nil
	}
	if err := s.launchToLogs(); err != nil {
		return "", err
	}
	return "Gateway starting...", nil
}

// AutoStart launches the gateway if it is not running. Returns true when a
// launch actually happened, false when the gateway was already up.
func (s *Supervisor) AutoStart() (bool, error) {
	if s.identity.IsRunning() {
		return false, nil
	}
	if err := s.launchToLogs(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Supervisor) launchToLogs() error {
	if err := s.paths.EnsureStateDir(); err != nil {
		return err
	}
	return s.launcher.Launch(s.paths.LogFile(), s.paths.ErrorLogFile())
}

// Stop delegates to the daemon's own stop verb. No precondition probe:
// stopping an already-stopped daemon is tolerated, and the control verb's
// own message (or failure) is the result.
func (s *Supervisor) Stop() (string, error) {
	return s.control.Stop()
}

// Restart delegates to the daemon's own restart verb.
func (s *Supervisor) Restart() (string, error) {
	return s.control.Restart()
}

// Doctor runs the daemon's self-diagnostic verb and forwards its output.
func (s *Supervisor) Doctor() (string, error) {
	return s.control.Doctor()
}

// Installed reports whether the daemon binary is on PATH. Infallible.
func (s *Supervisor) Installed() bool {
	return s.control.Installed()
}

// Diagnostics composes independent sub-probes into one snapshot. Read-only:
// it must not create the log files (or anything else) as a side effect.
func (s *Supervisor) Diagnostics() Diagnostics {
	return Diagnostics{
		Installed:    s.control.Installed(),
		Running:      s.identity.IsRunning(),
		Port:         s.identity.Port,
		DashboardURL: s.identity.BaseURL(),
		Version:      s.control.Version(),
		ProfileName:  os.Getenv(ProfileEnvVar),
		LogPath:      s.paths.LogFile(),
		ErrorLogPath: s.paths.ErrorLogFile(),
	}
}

// DashboardURL returns the dashboard URL, with the auth token appended as a
// percent-encoded query parameter when one can be read from the gateway's
// config. The token is read fresh on every call since the daemon may
// rotate it.
func (s *Supervisor) DashboardURL() string {
	base := s.identity.BaseURL()
	token := config.ReadAuthToken(s.paths)
	if token == "" {
		return base
	}
	return base + "?token=" + url.QueryEscape(token)
}

// LogPath returns the gateway's stdout log path.
func (s *Supervisor) LogPath() string {
	return s.paths.LogFile()
}

// TailLogs returns the last maxLines lines of the gateway's stdout log.
func (s *Supervisor) TailLogs(maxLines int) (string, error) {
	return TailLogs(s.paths.LogFile(), maxLines)
}

// ClearLogs truncates the gateway's stdout log. Succeeds as a no-op when the
// file does not exist.
func (s *Supervisor) ClearLogs() error {
	return ClearLogs(s.paths.LogFile())
}
