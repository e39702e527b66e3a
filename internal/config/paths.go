// Package config provides path resolution and configuration loading for the
// clawctl gateway supervisor.
//
// Two kinds of configuration exist side by side:
//
// 1. Supervisor Configuration (~/.openclaw/clawctl.yml)
//   - Settings for clawctl itself: gateway port, binary name, probe timeout
//   - Loaded via LoadGlobalConfig()
//   - Environment variables override file values (CLAWCTL_* prefix)
//
// 2. Gateway Configuration (~/.openclaw/openclaw.json)
//   - Owned and written by the gateway daemon or its installer
//   - clawctl only ever reads it, to extract the dashboard auth token
//   - Read via ReadAuthToken(); absence is a valid state, never an error
package config

import (
	"os"
	"path/filepath"
)

const (
	// StateDirName is the per-user OpenClaw state directory under $HOME.
	StateDirName = ".openclaw"

	// GatewayConfigFileName is the gateway's own config file inside the
	// state directory. clawctl treats it as read-only.
	GatewayConfigFileName = "openclaw.json"

	// SupervisorConfigName is the clawctl settings file name (no extension,
	// viper resolves clawctl.yml inside the state directory).
	SupervisorConfigName = "clawctl"

	// LogFileName and ErrorLogFileName are the gateway's stdout and stderr
	// log files inside the state directory.
	LogFileName      = "gateway.log"
	ErrorLogFileName = "gateway_error.log"
)

// Legacy clawdbot install locations, kept as a read-only fallback for the
// auth token until users migrate.
const (
	legacyDirName        = ".clawdbot"
	legacyConfigFileName = "clawdbot.json"
)

// Paths resolves every file the supervisor touches inside the OpenClaw state
// directory. Construct with DefaultPaths for real use, or populate the fields
// directly in tests to point at a temp directory.
type Paths struct {
	// StateDir is the OpenClaw state directory (~/.openclaw).
	StateDir string

	// LegacyConfig is the old clawdbot config file path, consulted only
	// when the primary gateway config is absent.
	LegacyConfig string
}

// DefaultPaths resolves the standard per-user paths. It does not create
// anything on disk; call EnsureStateDir before writing into the directory.
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, err
	}
	return Paths{
		StateDir:     filepath.Join(home, StateDirName),
		LegacyConfig: filepath.Join(home, legacyDirName, legacyConfigFileName),
	}, nil
}

// EnsureStateDir creates the state directory if it does not exist.
// Safe to call on every invocation.
func (p Paths) EnsureStateDir() error {
	return os.MkdirAll(p.StateDir, 0755)
}

// GatewayConfigFile returns the path to the gateway's openclaw.json.
func (p Paths) GatewayConfigFile() string {
	return filepath.Join(p.StateDir, GatewayConfigFileName)
}

// LogFile returns the gateway stdout log path. The file itself is created
// lazily by whichever operation first writes it.
func (p Paths) LogFile() string {
	return filepath.Join(p.StateDir, LogFileName)
}

// ErrorLogFile returns the gateway stderr log path.
func (p Paths) ErrorLogFile() string {
	return filepath.Join(p.StateDir, ErrorLogFileName)
}
