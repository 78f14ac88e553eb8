package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List gear materials and their safe bending stress",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		printHeader(out, "Gear Materials")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Material\tSafe stress\t")
		for _, m := range cat.Materials() {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", m.Name, qIn(m.SafeStrength, "psi"), qIn(m.SafeStrength, "MPa"))
		}
		w.Flush()
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
