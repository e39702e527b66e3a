package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclaw/clawctl/internal/gateway"
)

var diagnosticsJSON bool

var gatewayDiagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "Show a gateway diagnostics snapshot",
	Long: `Compose a point-in-time snapshot of gateway facts: install state,
liveness, version, profile, and log paths.

Each fact is probed independently; a failed sub-probe leaves its field
empty instead of failing the snapshot. Running diagnostics creates nothing
on disk.`,
	RunE: runGatewayDiagnostics,
}

func init() {
	gatewayCmd.AddCommand(gatewayDiagnosticsCmd)
	gatewayDiagnosticsCmd.Flags().BoolVar(&diagnosticsJSON, "json", false, "Output as JSON")
}

func runGatewayDiagnostics(cmd *cobra.Command, args []string) error {
	sup, _, err := newSupervisor()
	if err != nil {
		return err
	}

	diag := sup.Diagnostics()

	if diagnosticsJSON {
		jsonBytes, err := json.MarshalIndent(diag, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	formatDiagnostics(diag)
	return nil
}

func formatDiagnostics(d gateway.Diagnostics) {
	fmt.Println("Gateway Diagnostics:")
	fmt.Printf("  Installed:  %s\n", yesNo(d.Installed))
	fmt.Printf("  Running:    %s\n", yesNo(d.Running))
	fmt.Printf("  Port:       %d\n", d.Port)
	fmt.Printf("  Dashboard:  %s\n", d.DashboardURL)
	fmt.Printf("  Version:    %s\n", orUnknown(d.Version))
	if d.ProfileName != "" {
		fmt.Printf("  Profile:    %s\n", d.ProfileName)
	}
	fmt.Printf("  Log:        %s\n", d.LogPath)
	fmt.Printf("  Error log:  %s\n", d.ErrorLogPath)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
