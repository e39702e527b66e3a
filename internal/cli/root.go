// Package cli implements the clawctl commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "clawctl",
	Short: "Supervise the OpenClaw gateway daemon",
	Long: `clawctl starts, stops, and inspects the OpenClaw gateway daemon.

The gateway is installed separately (npm install -g openclaw) and listens on
a fixed local port. clawctl launches it with log capture, checks whether it
is reachable, and delegates stop/restart to the daemon's own CLI.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
