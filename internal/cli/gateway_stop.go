package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gatewayStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the gateway daemon",
	Long: `Stop the gateway daemon via its own stop verb (openclaw daemon stop).

clawctl does not track the daemon's PID: once launched detached, the
process may be managed outside this tool's process tree, so shutdown is
always delegated to the daemon's CLI.`,
	RunE: runGatewayStop,
}

func init() {
	gatewayCmd.AddCommand(gatewayStopCmd)
}

func runGatewayStop(cmd *cobra.Command, args []string) error {
	sup, _, err := newSupervisor()
	if err != nil {
		return err
	}

	msg, err := sup.Stop()
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
