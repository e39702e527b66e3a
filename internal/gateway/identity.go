// Package gateway supervises the OpenClaw gateway daemon: it starts the
// process with log redirection, probes liveness over TCP, and delegates
// stop/restart/doctor to the daemon's own CLI verbs.
//
// # Core Components
//
// 1. Identity: the daemon's fixed address (port, base URL, probe timeout).
// Injected into every component at construction so tests can substitute an
// ephemeral port; nothing in this package reads a global port constant.
//
// 2. Supervisor: the lifecycle controller. Each operation is a short-lived,
// independently dispatched unit of work: it recomputes everything it needs
// from disk and network on every call, and no status is ever cached.
//
// 3. ControlClient: the "I do not own this process's lifetime" boundary.
// Once launched detached, the gateway may be re-registered as a background
// service outside our process tree, so there is no reliable PID to signal.
// Stop, restart, doctor, version, and the install check therefore shell out
// to the openclaw binary instead of tracking a process handle.
//
// # Concurrency
//
// Operations are safe to invoke concurrently. The probe is a stateless
// read-only dial. Two concurrent Start calls may both observe "not running"
// and both spawn; the loser's port bind fails inside the daemon and spawn
// success is deliberately not treated as proof of a unique instance.
package gateway

import (
	"fmt"
	"time"
)

// DefaultProbeTimeout bounds the liveness probe's connect attempt.
const DefaultProbeTimeout = 2 * time.Second

// Identity is the immutable address of the supervised gateway daemon.
// Exactly one port value is used everywhere: probing, launching, and
// URL construction all go through the same Identity.
type Identity struct {
	Port         int
	ProbeTimeout time.Duration
}

// NewIdentity creates an Identity for the given port. A non-positive
// probeTimeout falls back to DefaultProbeTimeout.
func NewIdentity(port int, probeTimeout time.Duration) Identity {
	if probeTimeout <= 0 {
		probeTimeout = DefaultProbeTimeout
	}
	return Identity{Port: port, ProbeTimeout: probeTimeout}
}

// Addr returns the TCP dial address of the gateway's control port.
func (id Identity) Addr() string {
	return fmt.Sprintf("127.0.0.1:%d", id.Port)
}

// BaseURL returns the gateway dashboard base URL (no auth token).
func (id Identity) BaseURL() string {
	return fmt.Sprintf("http://127.0.0.1:%d/", id.Port)
}
