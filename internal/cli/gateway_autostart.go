package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gatewayAutostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Start the gateway only if it is not already running",
	Long: `Start the gateway if nothing is listening on its port.

Intended for login hooks and session managers: unlike start, the output
distinguishes "started now" from "was already running" so callers can tell
whether a launch actually happened.`,
	RunE: runGatewayAutostart,
}

func init() {
	gatewayCmd.AddCommand(gatewayAutostartCmd)
}

func runGatewayAutostart(cmd *cobra.Command, args []string) error {
	sup, _, err := newSupervisor()
	if err != nil {
		return err
	}

	started, err := sup.AutoStart()
	if err != nil {
		return err
	}
	if started {
		fmt.Println("Gateway started")
	} else {
		fmt.Println("Gateway already running")
	}
	return nil
}
