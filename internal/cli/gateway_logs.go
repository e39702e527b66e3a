package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/openclaw/clawctl/internal/gateway"
)

var (
	logsLines  int
	logsFollow bool
)

var gatewayLogsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show gateway logs",
	Long: `Show the tail of the gateway's stdout log (~/.openclaw/gateway.log).

By default prints the last N lines and exits. Use --follow to keep
streaming new output (like tail -f); the follow survives gateway restarts,
which truncate and recreate the log file.`,
	RunE: runGatewayLogs,
}

func init() {
	gatewayCmd.AddCommand(gatewayLogsCmd)
	gatewayLogsCmd.Flags().IntVarP(&logsLines, "lines", "n", 0, "Number of lines to show (default from config, 100)")
	gatewayLogsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output (tail -f behavior)")
}

func runGatewayLogs(cmd *cobra.Command, args []string) error {
	sup, cfg, err := newSupervisor()
	if err != nil {
		return err
	}

	lines := logsLines
	if lines <= 0 {
		lines = cfg.Logs.TailLines
	}

	text, err := sup.TailLogs(lines)
	if err != nil {
		return err
	}
	if text != "" {
		fmt.Println(text)
	}

	if !logsFollow {
		return nil
	}

	// Handle Ctrl+C gracefully for follow mode.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return gateway.FollowLogs(ctx, sup.LogPath(), os.Stdout)
}
