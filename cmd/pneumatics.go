package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/alexiusacademia/mechcalc/internal/diagram"
	"github.com/alexiusacademia/mechcalc/internal/export"
	"github.com/alexiusacademia/mechcalc/internal/pneumatics"
	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	fillCompressor string
	fillVolume     units.Quantity
	fillStart      units.Quantity
	fillTarget     units.Quantity
	fillStep       units.Quantity
	fillShowPlot   bool
	fillOutput     string
	fillXLSX       string
)

var pneumaticsCmd = &cobra.Command{
	Use:   "pneumatics",
	Short: "Pneumatic system calculations",
}

var pneumaticsFillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Time for a compressor to fill air tanks",
	Long: heredoc.Doc(`
		Integrate tank pressure while a compressor charges a closed volume
		at constant temperature:

		  dP/dt = Q(P) * Patm / V

		The simulation stops at --target, when the compressor can no longer
		raise the pressure, or after 30 minutes.

		Examples:
		  # Two 574 mL tanks from empty to 120 psi
		  mechcalc pneumatics fill --compressor "VIAIR 90C" --volume "1148 mL" --target 120

		  # Top off from 60 psi with a terminal plot
		  mechcalc pneumatics fill --volume "0.04 ft^3" --start 60 --target 120 --plot
	`),
	RunE: runPneumaticsFill,
}

func init() {
	rootCmd.AddCommand(pneumaticsCmd)
	pneumaticsCmd.AddCommand(pneumaticsFillCmd)

	pneumaticsFillCmd.Flags().StringVarP(&fillCompressor, "compressor", "c", "VIAIR 90C", "Compressor name (see 'mechcalc compressor list')")
	quantityVar(pneumaticsFillCmd.Flags(), &fillVolume, "volume", "0", "L", "Total tank volume [required]")
	quantityVar(pneumaticsFillCmd.Flags(), &fillStart, "start", "0", "psi", "Starting gauge pressure")
	quantityVar(pneumaticsFillCmd.Flags(), &fillTarget, "target", "120", "psi", "Target gauge pressure")
	quantityVar(pneumaticsFillCmd.Flags(), &fillStep, "step", "0.5", "s", "Integration step")
	pneumaticsFillCmd.Flags().BoolVar(&fillShowPlot, "plot", false, "Show an ASCII pressure curve")
	pneumaticsFillCmd.Flags().StringVarP(&fillOutput, "output", "o", "", "Export the pressure curve to an image (png, svg, pdf)")
	pneumaticsFillCmd.Flags().StringVar(&fillXLSX, "xlsx", "", "Export the samples to an xlsx file")

	pneumaticsFillCmd.MarkFlagRequired("volume")
}

func runPneumaticsFill(cmd *cobra.Command, args []string) error {
	c, err := cat.Compressor(fillCompressor)
	if err != nil {
		return err
	}
	res, err := pneumatics.SimulateFill(c, pneumatics.FillParams{
		TankVolume:     fillVolume,
		StartPressure:  fillStart,
		TargetPressure: fillTarget,
		Step:           fillStep,
	})
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"compressor": c.Name,
		"samples":    len(res.Samples),
		"reached":    res.Reached,
	}).Debug("fill simulated")

	last := res.Samples[len(res.Samples)-1]

	out := cmd.OutOrStdout()
	printHeader(out, "Tank Fill - "+c.Name)
	w := section(out, "INPUT")
	fmt.Fprintf(w, "  Tank volume:\t%s\n", q(fillVolume))
	fmt.Fprintf(w, "  Start pressure:\t%s\n", q(fillStart))
	fmt.Fprintf(w, "  Target pressure:\t%s\n", q(fillTarget))
	w.Flush()
	fmt.Fprintln(out)

	w = section(out, "RESULTS")
	fmt.Fprintf(w, "  Final pressure:\t%s\n", q(last.Pressure))
	fmt.Fprintf(w, "  Elapsed time:\t%s\n", q(res.Duration))
	fmt.Fprintf(w, "  Final flow:\t%s\n", qIn(last.Flow, "cfm"))
	w.Flush()
	fmt.Fprintln(out)

	if res.Reached {
		fmt.Fprintln(out, diagram.DrawSummaryBox("FILL TIME", []string{
			fmt.Sprintf("%s to reach %s", q(res.Duration), q(fillTarget)),
		}))
	} else {
		fmt.Fprintf(out, "  ⚠ Target not reached; pressure levels off at %s\n\n", q(last.Pressure))
	}

	times := make([]float64, len(res.Samples))
	pressures := make([]float64, len(res.Samples))
	flows := make([]float64, len(res.Samples))
	for i, s := range res.Samples {
		times[i] = s.Time.Scalar()
		pressures[i] = s.Pressure.Scalar()
		if flows[i], err = s.Flow.In(units.MustUnit("cfm")); err != nil {
			return err
		}
	}
	if len(times) < 2 {
		return nil
	}
	data := diagram.CurveData{
		Title:  c.Name + " tank fill",
		XLabel: "Time (s)",
		YLabel: "Pressure (psi)",
		Series: []diagram.Series{{Name: c.Name, X: times, Y: pressures}},
	}
	if fillShowPlot {
		plot, err := diagram.DrawASCIICurve(data, 60, 12)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, plot)
	}
	if fillOutput != "" {
		path, err := diagram.ExportCurve(data, fillOutput)
		if err != nil {
			return fmt.Errorf("exporting curve: %w", err)
		}
		fmt.Fprintf(out, "Curve exported to: %s\n", path)
	}
	if fillXLSX != "" {
		rows := make([][]float64, len(times))
		for i := range times {
			rows[i] = []float64{times[i], pressures[i], flows[i]}
		}
		err := export.WriteXLSX(fillXLSX, export.Table{
			Sheet:   "Fill",
			Headers: []string{"Time (s)", "Pressure (psi)", "Flow (cfm)"},
			Rows:    rows,
		})
		if err != nil {
			return fmt.Errorf("exporting samples: %w", err)
		}
		fmt.Fprintf(out, "Samples exported to: %s\n", fillXLSX)
	}
	return nil
}
