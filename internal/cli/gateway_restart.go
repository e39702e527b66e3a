package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gatewayRestartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the gateway daemon",
	Long:  `Restart the gateway daemon via its own restart verb (openclaw daemon restart).`,
	RunE:  runGatewayRestart,
}

func init() {
	gatewayCmd.AddCommand(gatewayRestartCmd)
}

func runGatewayRestart(cmd *cobra.Command, args []string) error {
	sup, _, err := newSupervisor()
	if err != nil {
		return err
	}

	msg, err := sup.Restart()
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
