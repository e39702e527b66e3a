package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Built-in defaults. The port matches the gateway's well-known control port;
// overriding it is only useful for tests and unusual installs.
const (
	DefaultGatewayPort  = 18789
	DefaultBinaryName   = "openclaw"
	DefaultProbeTimeout = 2   // seconds
	DefaultTailLines    = 100 // lines
)

// LoadGlobalConfig loads clawctl settings from ~/.openclaw/clawctl.yml.
// Returns default values if the file doesn't exist (not an error).
// Environment variables override file values (CLAWCTL_* prefix, e.g.
// CLAWCTL_GATEWAY_PORT).
func LoadGlobalConfig() (*GlobalConfig, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return loadGlobalConfig(paths.StateDir)
}

func loadGlobalConfig(stateDir string) (*GlobalConfig, error) {
	v := viper.New()

	v.SetConfigName(SupervisorConfigName)
	v.SetConfigType("yml")
	v.AddConfigPath(stateDir)

	v.SetEnvPrefix("CLAWCTL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindGlobalEnvVars(v)

	setGlobalDefaults(v)

	// Missing file is fine: defaults apply.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &GlobalConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// bindGlobalEnvVars binds all environment variables for the supervisor config.
func bindGlobalEnvVars(v *viper.Viper) {
	v.BindEnv("gateway.port")
	v.BindEnv("gateway.binary")
	v.BindEnv("gateway.probe_timeout")

	v.BindEnv("logs.tail_lines")
}

// setGlobalDefaults configures viper with default values.
func setGlobalDefaults(v *viper.Viper) {
	v.SetDefault("gateway.port", DefaultGatewayPort)
	v.SetDefault("gateway.binary", DefaultBinaryName)
	v.SetDefault("gateway.probe_timeout", DefaultProbeTimeout)

	v.SetDefault("logs.tail_lines", DefaultTailLines)
}
