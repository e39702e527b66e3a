package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gatewayStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the gateway daemon",
	Long: `Start the gateway daemon with its output captured to log files.

If the gateway is already reachable this is a no-op. Each start truncates
the previous run's logs, so log retrieval always refers to the current run.`,
	RunE: runGatewayStart,
}

func init() {
	gatewayCmd.AddCommand(gatewayStartCmd)
}

func runGatewayStart(cmd *cobra.Command, args []string) error {
	sup, _, err := newSupervisor()
	if err != nil {
		return err
	}

	msg, err := sup.Start()
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
