package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc"
	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/spf13/cobra"
)

var compressorCmd = &cobra.Command{
	Use:   "compressor",
	Short: "Compressor flow rates",
	Long: heredoc.Doc(`
		Evaluate compressor free-air flow curves. Each compressor's flow
		is a polynomial fit in gauge pressure (psi) giving cubic feet per
		minute. Pressures outside the fitted range are not checked.

		Subcommands:
		  list   - Catalog compressors with flow at common pressures
		  cfm    - Flow of one compressor at a pressure
		  curve  - Flow curves over a pressure range
	`),
}

var compressorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog compressors",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		printHeader(out, "Compressor Catalog")
		pressures := []float64{0, 60, 120}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprint(w, "  Compressor")
		for _, p := range pressures {
			fmt.Fprintf(w, "\t@ %g psi", p)
		}
		fmt.Fprintln(w)
		for _, c := range cat.Compressors() {
			fmt.Fprintf(w, "  %s", c.Name)
			for _, p := range pressures {
				flow, err := c.CFM(units.MustNew(p, "psi"))
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "\t%s", qIn(flow, "cfm"))
			}
			fmt.Fprintln(w)
		}
		w.Flush()
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compressorCmd)
	compressorCmd.AddCommand(compressorListCmd)
}
