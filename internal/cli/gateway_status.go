package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statusJSON bool

var gatewayStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show gateway status",
	Long: `Show whether the gateway daemon is reachable on its control port.

Status is computed fresh on every call from a single liveness probe;
nothing is cached.`,
	RunE: runGatewayStatus,
}

func init() {
	gatewayCmd.AddCommand(gatewayStatusCmd)
	gatewayStatusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output as JSON")
}

func runGatewayStatus(cmd *cobra.Command, args []string) error {
	sup, _, err := newSupervisor()
	if err != nil {
		return err
	}

	status := sup.Status()

	if statusJSON {
		jsonBytes, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	if status.Running {
		fmt.Printf("Gateway is running on port %d\n", status.Port)
		fmt.Printf("  Dashboard: %s\n", status.DashboardURL)
	} else {
		fmt.Println("Gateway is not running")
	}
	return nil
}
