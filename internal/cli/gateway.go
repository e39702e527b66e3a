package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openclaw/clawctl/internal/config"
	"github.com/openclaw/clawctl/internal/gateway"
)

var gatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Manage the OpenClaw gateway daemon",
	Long: `Manage the OpenClaw gateway daemon.

The gateway listens on a fixed local port (default 18789). clawctl probes
that port to decide whether the daemon is up, launches it with stdout/stderr
captured to ~/.openclaw/gateway.log and gateway_error.log, and delegates
stop/restart/doctor to the openclaw binary's own verbs.`,
}

func init() {
	rootCmd.AddCommand(gatewayCmd)
}

// newSupervisor builds the gateway supervisor from the loaded configuration.
// Every command constructs it fresh: the supervisor holds no state worth
// keeping between invocations.
func newSupervisor() (*gateway.Supervisor, *config.GlobalConfig, error) {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve state directory: %w", err)
	}

	identity := gateway.NewIdentity(cfg.Gateway.Port, time.Duration(cfg.Gateway.ProbeTimeout)*time.Second)
	control := gateway.NewBinaryControlClient(cfg.Gateway.Binary)
	launcher := gateway.ProcessLauncher{Binary: cfg.Gateway.Binary, Identity: identity}

	return gateway.NewSupervisor(identity, paths, control, launcher), cfg, nil
}
