package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/alexiusacademia/mechcalc/internal/diagram"
	"github.com/alexiusacademia/mechcalc/internal/export"
	"github.com/alexiusacademia/mechcalc/internal/pneumatics"
	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/spf13/cobra"
)

var (
	compCurveNames  []string
	compCurveMax    units.Quantity
	compCurvePoints int
	compCurveNoPlot bool
	compCurveOutput string
	compCurveXLSX   string
)

var compressorCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Flow curves over a pressure range",
	Long: heredoc.Doc(`
		Sample flow from 0 psi to --max-pressure for one or more
		compressors. An ASCII plot is printed unless --no-plot is given.

		Examples:
		  # Compare two compressors
		  mechcalc compressor curve -c "VIAIR 90C" -c "Thomas 215"

		  # Every catalog compressor, exported
		  mechcalc compressor curve --max-pressure 120 -o flow.svg --xlsx flow.xlsx
	`),
	RunE: runCompressorCurve,
}

func init() {
	compressorCmd.AddCommand(compressorCurveCmd)

	compressorCurveCmd.Flags().StringSliceVarP(&compCurveNames, "compressor", "c", nil, "Compressor names (default all)")
	quantityVar(compressorCurveCmd.Flags(), &compCurveMax, "max-pressure", "120", "psi", "Highest pressure sampled")
	compressorCurveCmd.Flags().IntVar(&compCurvePoints, "points", 25, "Number of samples")
	compressorCurveCmd.Flags().BoolVar(&compCurveNoPlot, "no-plot", false, "Skip the ASCII plot")
	compressorCurveCmd.Flags().StringVarP(&compCurveOutput, "output", "o", "", "Export the curves to an image (png, svg, pdf)")
	compressorCurveCmd.Flags().StringVar(&compCurveXLSX, "xlsx", "", "Export the samples to an xlsx file")
}

func runCompressorCurve(cmd *cobra.Command, args []string) error {
	if compCurvePoints < 2 {
		return fmt.Errorf("--points must be at least 2, got %d", compCurvePoints)
	}
	compressors := cat.Compressors()
	if len(compCurveNames) > 0 {
		compressors = compressors[:0]
		for _, name := range compCurveNames {
			c, err := cat.Compressor(name)
			if err != nil {
				return err
			}
			compressors = append(compressors, c)
		}
	}
	maxPSI, err := compCurveMax.In(units.MustUnit("psi"))
	if err != nil {
		return err
	}

	pressures := make([]float64, compCurvePoints)
	for i := range pressures {
		pressures[i] = maxPSI * float64(i) / float64(compCurvePoints-1)
	}

	data := diagram.CurveData{
		Title:  "Compressor flow",
		XLabel: "Pressure (psi)",
		YLabel: "Flow (cfm)",
	}
	var tables []export.Table
	for _, c := range compressors {
		flows, err := sampleFlow(c, pressures)
		if err != nil {
			return err
		}
		data.Series = append(data.Series, diagram.Series{Name: c.Name, X: pressures, Y: flows})

		rows := make([][]float64, len(pressures))
		for i := range pressures {
			rows[i] = []float64{pressures[i], flows[i]}
		}
		tables = append(tables, export.Table{
			Sheet:   c.Name,
			Headers: []string{"Pressure (psi)", "Flow (cfm)"},
			Rows:    rows,
		})
	}

	out := cmd.OutOrStdout()
	printHeader(out, "Compressor Flow Curves")
	if !compCurveNoPlot {
		plot, err := diagram.DrawASCIICurve(data, 60, 14)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, plot)
	}
	if compCurveOutput != "" {
		path, err := diagram.ExportCurve(data, compCurveOutput)
		if err != nil {
			return fmt.Errorf("exporting curve: %w", err)
		}
		fmt.Fprintf(out, "Curve exported to: %s\n", path)
	}
	if compCurveXLSX != "" {
		if err := export.WriteXLSX(compCurveXLSX, tables...); err != nil {
			return fmt.Errorf("exporting samples: %w", err)
		}
		fmt.Fprintf(out, "Samples exported to: %s\n", compCurveXLSX)
	}
	return nil
}

func sampleFlow(c pneumatics.Compressor, pressures []float64) ([]float64, error) {
	flows := make([]float64, len(pressures))
	for i, p := range pressures {
		f, err := c.CFM(units.MustNew(p, "psi"))
		if err != nil {
			return nil, err
		}
		if flows[i], err = f.In(units.MustUnit("cfm")); err != nil {
			return nil, err
		}
	}
	return flows, nil
}
