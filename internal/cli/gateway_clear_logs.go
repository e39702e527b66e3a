package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gatewayClearLogsCmd = &cobra.Command{
	Use:   "clear-logs",
	Short: "Clear the gateway log",
	Long: `Truncate the gateway's stdout log to empty.

Clearing a log that was never created succeeds without error. The gateway
may be writing while the file is truncated; logs are diagnostic and a brief
interleave is tolerated.`,
	RunE: runGatewayClearLogs,
}

func init() {
	gatewayCmd.AddCommand(gatewayClearLogsCmd)
}

func runGatewayClearLogs(cmd *cobra.Command, args []string) error {
	sup, _, err := newSupervisor()
	if err != nil {
		return err
	}

	if err := sup.ClearLogs(); err != nil {
		return err
	}
	fmt.Println("Gateway logs cleared")
	return nil
}
