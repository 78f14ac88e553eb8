package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfmCompressor string
	cfmPressure   units.Quantity
)

var compressorCFMCmd = &cobra.Command{
	Use:   "cfm",
	Short: "Flow rate of a compressor at a pressure",
	Long: heredoc.Doc(`
		Evaluate a compressor's flow at a gauge pressure.

		Examples:
		  mechcalc compressor cfm --compressor "VIAIR 90C" --pressure 60
		  mechcalc compressor cfm --compressor "Thomas 215" --pressure "5 bar"
	`),
	RunE: runCompressorCFM,
}

func init() {
	compressorCmd.AddCommand(compressorCFMCmd)

	compressorCFMCmd.Flags().StringVarP(&cfmCompressor, "compressor", "c", "VIAIR 90C", "Compressor name (see 'mechcalc compressor list')")
	quantityVar(compressorCFMCmd.Flags(), &cfmPressure, "pressure", "0", "psi", "Tank gauge pressure [required]")

	compressorCFMCmd.MarkFlagRequired("pressure")
}

func runCompressorCFM(cmd *cobra.Command, args []string) error {
	c, err := cat.Compressor(cfmCompressor)
	if err != nil {
		return err
	}
	flow, err := c.CFM(cfmPressure)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"compressor": c.Name,
		"pressure":   cfmPressure.String(),
		"flow":       flow.String(),
	}).Debug("evaluated flow")

	out := cmd.OutOrStdout()
	printHeader(out, "Compressor Flow - "+c.Name)
	w := section(out, "RESULTS")
	fmt.Fprintf(w, "  Pressure:\t%s (%s)\n", q(cfmPressure), qIn(cfmPressure, "psi"))
	fmt.Fprintf(w, "  Flow:\t%s\n", qIn(flow, "cfm"))
	fmt.Fprintf(w, "  \t%s\n", flow.Fixed(cfg.Precision+4))
	fmt.Fprintf(w, "  \t%s\n", qIn(flow, "L/min"))
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
