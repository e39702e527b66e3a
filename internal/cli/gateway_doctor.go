package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gatewayDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run the gateway's self-diagnostic",
	Long: `Run openclaw doctor and forward its output verbatim.

clawctl does not interpret the report; the daemon's own diagnostic text is
the deliverable.`,
	RunE: runGatewayDoctor,
}

func init() {
	gatewayCmd.AddCommand(gatewayDoctorCmd)
}

func runGatewayDoctor(cmd *cobra.Command, args []string) error {
	sup, _, err := newSupervisor()
	if err != nil {
		return err
	}

	out, err := sup.Doctor()
	if err != nil {
		return err
	}
	fmt.Print(out)
	if len(out) > 0 && out[len(out)-1] != '\n' {
		fmt.Println()
	}
	return nil
}
