package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

var motorCmd = &cobra.Command{
	Use:   "motor",
	Short: "DC motor operating points and curves",
	Long: heredoc.Doc(`
		Solve brushed or brushless DC motors with the linear model

		  torque = kt * current
		  speed  = kv * (voltage - current * R)

		fitted to nameplate stall and free data.

		Subcommands:
		  list   - Motors in the catalog with their model constants
		  solve  - Operating point from any two of voltage, current, torque, speed
		  curve  - Characteristic curve from free to stall at a voltage
	`),
}

var motorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog motors",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		printHeader(out, "Motor Catalog")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Motor\tStall torque\tStall current\tFree speed\tFree current\tResistance")
		for _, s := range cat.Motors() {
			r, err := s.Resistance()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n",
				s.Name, q(s.StallTorque), q(s.StallCurrent), q(s.FreeSpeed), q(s.FreeCurrent), r.Fixed(4))
		}
		w.Flush()
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(motorCmd)
	motorCmd.AddCommand(motorListCmd)
}
