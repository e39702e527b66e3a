package config

// GlobalConfig holds machine-wide clawctl settings.
// Loaded from ~/.openclaw/clawctl.yml (a file the gateway itself never reads).
type GlobalConfig struct {
	Gateway GatewaySettings `yaml:"gateway" mapstructure:"gateway"`
	Logs    LogSettings     `yaml:"logs" mapstructure:"logs"`
}

// GatewaySettings identifies the supervised daemon.
type GatewaySettings struct {
	Port         int    `yaml:"port" mapstructure:"port"`                   // Fixed gateway control port
	Binary       string `yaml:"binary" mapstructure:"binary"`               // Daemon binary name resolved via PATH
	ProbeTimeout int    `yaml:"probe_timeout" mapstructure:"probe_timeout"` // Liveness probe connect timeout in seconds
}

// LogSettings controls log retrieval defaults.
type LogSettings struct {
	TailLines int `yaml:"tail_lines" mapstructure:"tail_lines"` // Default window for `gateway logs`
}
