package gateway

import "net"

// IsRunning reports whether something is listening on the gateway's control
// port. The connection is released immediately: this is a liveness probe,
// not a session. Any dial failure (refused, timeout, unreachable) is the
// negative answer, never an error: "not running" is an expected steady
// state, not an exceptional condition.
func (id Identity) IsRunning() bool {
	timeout := id.ProbeTimeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	conn, err := net.DialTimeout("tcp", id.Addr(), timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
