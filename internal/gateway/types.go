package gateway

// Status is a point-in-time liveness snapshot. It is never persisted and is
// recomputed from a single probe on every query.
type Status struct {
	Running      bool   `json:"running"`
	Port         int    `json:"port"`
	DashboardURL string `json:"dashboard_url"`
}

// Diagnostics is a richer status snapshot composed from independent
// sub-probes. Each sub-probe failure degrades its own field to a zero value
// rather than failing the whole diagnostic: a missing version string or
// profile name is informational, not fatal.
type Diagnostics struct {
	Installed    bool   `json:"installed"`
	Running      bool   `json:"running"`
	Port         int    `json:"port"`
	DashboardURL string `json:"dashboard_url"`
	Version      string `json:"version,omitempty"`
	ProfileName  string `json:"profile_name,omitempty"`
	LogPath      string `json:"log_path"`
	ErrorLogPath string `json:"error_log_path"`
}
