package cli

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"
)

var dashboardOpen bool

var gatewayDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print or open the gateway dashboard URL",
	Long: `Print the gateway dashboard URL, with the auth token appended as a
percent-encoded query parameter when one is found in the gateway's config.

The token is read fresh from disk on every call, since the daemon may
rotate it.
With --open the URL is opened in the default browser instead.`,
	RunE: runGatewayDashboard,
}

func init() {
	gatewayCmd.AddCommand(gatewayDashboardCmd)
	gatewayDashboardCmd.Flags().BoolVar(&dashboardOpen, "open", false, "Open the dashboard in the default browser")
}

func runGatewayDashboard(cmd *cobra.Command, args []string) error {
	sup, _, err := newSupervisor()
	if err != nil {
		return err
	}

	url := sup.DashboardURL()

	if !dashboardOpen {
		fmt.Println(url)
		return nil
	}

	if err := openBrowser(url); err != nil {
		return fmt.Errorf("failed to open dashboard: %w", err)
	}
	return nil
}

// openBrowser launches the platform's default browser on the URL.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
