package gateway

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/clawctl/internal/config"
)

// Test Plan for Supervisor:
// - Start is a no-op when the probe sees a listener
// - Start launches to the resolved log paths when nothing listens
// - Start propagates launch failures
// - AutoStart reports whether a launch actually happened
// - Status reflects a single probe
// - Stop/Restart/Doctor delegate to the control client
// - Diagnostics composes sub-probes and creates no files
// - DashboardURL appends a percent-encoded token only when one resolves

// fakeControl is a canned ControlClient.
type fakeControl struct {
	stopMsg    string
	stopErr    error
	restartMsg string
	doctorOut  string
	version    string
	installed  bool
	stopCalls  int
}

func (f *fakeControl) Stop() (string, error) {
	f.stopCalls++
	return f.stopMsg, f.stopErr
}
func (f *fakeControl) Restart() (string, error) { return f.restartMsg, nil }
func (f *fakeControl) Doctor() (string, error)  { return f.doctorOut, nil }
func (f *fakeControl) Version() string          { return f.version }
func (f *fakeControl) Installed() bool          { return f.installed }

// fakeLauncher records launches and optionally fails.
type fakeLauncher struct {
	calls   int
	logPath string
	errPath string
	err     error
}

func (f *fakeLauncher) Launch(logPath, errorLogPath string) error {
	f.calls++
	f.logPath = logPath
	f.errPath = errorLogPath
	return f.err
}

func testPaths(t *testing.T) config.Paths {
	t.Helper()
	base := t.TempDir()
	return config.Paths{
		StateDir:     filepath.Join(base, ".openclaw"),
		LegacyConfig: filepath.Join(base, ".clawdbot", "clawdbot.json"),
	}
}

func stoppedIdentity(t *testing.T) Identity {
	t.Helper()
	return NewIdentity(freePort(t), 500*time.Millisecond)
}

func runningIdentity(t *testing.T) (Identity, net.Listener) {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })
	port := listener.Addr().(*net.TCPAddr).Port
	return NewIdentity(port, 500*time.Millisecond), listener
}

func TestStart_AlreadyRunning(t *testing.T) {
	t.Parallel()

	id, _ := runningIdentity(t)
	launcher := &fakeLauncher{}
	sup := NewSupervisor(id, testPaths(t), &fakeControl{}, launcher)

	msg, err := sup.Start()

	require.NoError(t, err)
	assert.Equal(t, "Gateway is already running", msg)
	assert.Zero(t, launcher.calls)
}

func TestStart_LaunchesWhenStopped(t *testing.T) {
	t.Parallel()

	paths := testPaths(t)
	launcher := &fakeLauncher{}
	sup := NewSupervisor(stoppedIdentity(t), paths, &fakeControl{}, launcher)

	msg, err := sup.Start()

	require.NoError(t, err)
	assert.Equal(t, "Gateway starting...", msg)
	require.Equal(t, 1, launcher.calls)
	assert.Equal(t, paths.LogFile(), launcher.logPath)
	assert.Equal(t, paths.ErrorLogFile(), launcher.errPath)

	// Start must have created the state directory for the log files.
	info, err := os.Stat(paths.StateDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStart_LaunchFailure(t *testing.T) {
	t.Parallel()

	launcher := &fakeLauncher{err: assert.AnError}
	sup := NewSupervisor(stoppedIdentity(t), testPaths(t), &fakeControl{}, launcher)

	_, err := sup.Start()
	require.ErrorIs(t, err, assert.AnError)
}

func TestAutoStart(t *testing.T) {
	t.Parallel()

	t.Run("launches when stopped", func(t *testing.T) {
		t.Parallel()
		launcher := &fakeLauncher{}
		sup := NewSupervisor(stoppedIdentity(t), testPaths(t), &fakeControl{}, launcher)

		started, err := sup.AutoStart()
		require.NoError(t, err)
		assert.True(t, started)
		assert.Equal(t, 1, launcher.calls)
	})

	t.Run("no-op when running", func(t *testing.T) {
		t.Parallel()
		id, _ := runningIdentity(t)
		launcher := &fakeLauncher{}
		sup := NewSupervisor(id, testPaths(t), &fakeControl{}, launcher)

		started, err := sup.AutoStart()
		require.NoError(t, err)
		assert.False(t, started)
		assert.Zero(t, launcher.calls)
	})
}

func TestStatus(t *testing.T) {
	t.Parallel()

	id, listener := runningIdentity(t)
	sup := NewSupervisor(id, testPaths(t), &fakeControl{}, &fakeLauncher{})

	status := sup.Status()
	assert.True(t, status.Running)
	assert.Equal(t, id.Port, status.Port)
	assert.Equal(t, id.BaseURL(), status.DashboardURL)

	require.NoError(t, listener.Close())

	status = sup.Status()
	assert.False(t, status.Running)
}

func TestStopRestartDoctor_Delegate(t *testing.T) {
	t.Parallel()

	control := &fakeControl{
		stopMsg:    "stopped",
		restartMsg: "restarted",
		doctorOut:  "report",
	}
	sup := NewSupervisor(stoppedIdentity(t), testPaths(t), control, &fakeLauncher{})

	msg, err := sup.Stop()
	require.NoError(t, err)
	assert.Equal(t, "stopped", msg)
	assert.Equal(t, 1, control.stopCalls)

	msg, err = sup.Restart()
	require.NoError(t, err)
	assert.Equal(t, "restarted", msg)

	out, err := sup.Doctor()
	require.NoError(t, err)
	assert.Equal(t, "report", out)
}

func TestStop_DelegatesEvenWhenStopped(t *testing.T) {
	t.Parallel()

	// No precondition probe: the control verb runs regardless and its
	// failure message is the result.
	control := &fakeControl{stopErr: assert.AnError}
	sup := NewSupervisor(stoppedIdentity(t), testPaths(t), control, &fakeLauncher{})

	_, err := sup.Stop()
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, control.stopCalls)
}

func TestDiagnostics_ComposesSubProbes(t *testing.T) {
	// t.Setenv is incompatible with t.Parallel.
	t.Setenv(ProfileEnvVar, "staging")

	paths := testPaths(t)
	control := &fakeControl{installed: true, version: "2.1.0"}
	sup := NewSupervisor(stoppedIdentity(t), paths, control, &fakeLauncher{})

	diag := sup.Diagnostics()

	assert.True(t, diag.Installed)
	assert.False(t, diag.Running)
	assert.Equal(t, sup.Identity().Port, diag.Port)
	assert.Equal(t, sup.Identity().BaseURL(), diag.DashboardURL)
	assert.Equal(t, "2.1.0", diag.Version)
	assert.Equal(t, "staging", diag.ProfileName)
	assert.Equal(t, paths.LogFile(), diag.LogPath)
	assert.Equal(t, paths.ErrorLogFile(), diag.ErrorLogPath)

	// Diagnostics is read-only: no log files may appear as a side effect.
	_, err := os.Stat(paths.LogFile())
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(paths.ErrorLogFile())
	assert.True(t, os.IsNotExist(err))
}

func TestDiagnostics_DegradedFields(t *testing.T) {
	// Ensure an unset profile degrades to empty rather than erroring.
	t.Setenv(ProfileEnvVar, "")
	os.Unsetenv(ProfileEnvVar)

	control := &fakeControl{installed: false, version: ""}
	sup := NewSupervisor(stoppedIdentity(t), testPaths(t), control, &fakeLauncher{})

	diag := sup.Diagnostics()
	assert.False(t, diag.Installed)
	assert.Empty(t, diag.Version)
	assert.Empty(t, diag.ProfileName)
}

func TestDashboardURL_NoToken(t *testing.T) {
	t.Parallel()

	sup := NewSupervisor(stoppedIdentity(t), testPaths(t), &fakeControl{}, &fakeLauncher{})
	assert.Equal(t, sup.Identity().BaseURL(), sup.DashboardURL())
}

func TestDashboardURL_EncodesToken(t *testing.T) {
	t.Parallel()

	paths := testPaths(t)
	require.NoError(t, paths.EnsureStateDir())
	cfg := `{"gateway":{"auth":{"token":"abc/+def"}}}`
	require.NoError(t, os.WriteFile(paths.GatewayConfigFile(), []byte(cfg), 0644))

	sup := NewSupervisor(stoppedIdentity(t), paths, &fakeControl{}, &fakeLauncher{})

	url := sup.DashboardURL()
	assert.Equal(t, sup.Identity().BaseURL()+"?token=abc%2F%2Bdef", url)
}

func TestSupervisor_TailAndClearLogs(t *testing.T) {
	t.Parallel()

	paths := testPaths(t)
	require.NoError(t, paths.EnsureStateDir())
	require.NoError(t, os.WriteFile(paths.LogFile(), []byte("a\nb\nc\n"), 0644))

	sup := NewSupervisor(stoppedIdentity(t), paths, &fakeControl{}, &fakeLauncher{})

	text, err := sup.TailLogs(2)
	require.NoError(t, err)
	assert.Equal(t, "b\nc", text)

	require.NoError(t, sup.ClearLogs())

	text, err = sup.TailLogs(0)
	require.NoError(t, err)
	assert.Empty(t, text)
}
