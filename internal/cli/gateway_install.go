package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var gatewayInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the gateway daemon via npm",
	Long: `Install the openclaw package globally (npm install -g openclaw).

The install blocks until npm exits. npm's stderr is shown verbatim on
failure.`,
	RunE: runGatewayInstall,
}

func init() {
	gatewayCmd.AddCommand(gatewayInstallCmd)
}

func runGatewayInstall(cmd *cobra.Command, args []string) error {
	sup, _, err := newSupervisor()
	if err != nil {
		return err
	}

	// npm gives no progress stream; a spinner keeps the wait visibly alive.
	spinner := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Installing OpenClaw"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionThrottle(65*time.Millisecond),
	)

	type result struct {
		msg string
		err error
	}
	done := make(chan result, 1)
	go func() {
		msg, err := sup.Install()
		done <- result{msg, err}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case r := <-done:
			spinner.Finish()
			fmt.Println()
			if r.err != nil {
				return r.err
			}
			fmt.Println(r.msg)
			return nil
		case <-ticker.C:
			spinner.Add(1)
		}
	}
}
