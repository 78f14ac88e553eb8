package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/alexiusacademia/mechcalc/internal/diagram"
	"github.com/alexiusacademia/mechcalc/internal/export"
	"github.com/alexiusacademia/mechcalc/internal/motor"
	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/spf13/cobra"
)

var (
	curveMotorName string
	curveVoltage   units.Quantity
	curvePoints    int
	curveShowPlot  bool
	curveOutput    string
	curveXLSX      string
)

var motorCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Characteristic curve of a motor",
	Long: heredoc.Doc(`
		Sample one motor from free current to stall current at a fixed
		voltage and report torque, speed and output power.

		Examples:
		  # CIM curve at nominal voltage with a terminal plot
		  mechcalc motor curve --motor CIM --plot

		  # NEO at 10 V, exported as an image and a spreadsheet
		  mechcalc motor curve --motor NEO --voltage 10 -o neo.png --xlsx neo.xlsx
	`),
	RunE: runMotorCurve,
}

func init() {
	motorCmd.AddCommand(motorCurveCmd)

	motorCurveCmd.Flags().StringVar(&curveMotorName, "motor", "CIM", "Motor name (see 'mechcalc motor list')")
	quantityVar(motorCurveCmd.Flags(), &curveVoltage, "voltage", "-", "V", "Applied voltage (default nominal)")
	motorCurveCmd.Flags().IntVar(&curvePoints, "points", 11, "Number of samples")
	motorCurveCmd.Flags().BoolVar(&curveShowPlot, "plot", false, "Show an ASCII power curve")
	motorCurveCmd.Flags().StringVarP(&curveOutput, "output", "o", "", "Export the curve to an image (png, svg, pdf)")
	motorCurveCmd.Flags().StringVar(&curveXLSX, "xlsx", "", "Export the samples to an xlsx file")
}

func runMotorCurve(cmd *cobra.Command, args []string) error {
	spec, err := cat.Motor(curveMotorName)
	if err != nil {
		return err
	}
	voltage := curveVoltage
	if voltage.IsZero() {
		voltage = spec.NominalVoltage
	}

	points, err := motor.Curve(spec, voltage, curvePoints)
	if err != nil {
		return err
	}

	var (
		current, torque, speed, power []float64
		peak                          int
	)
	for i, p := range points {
		a, _ := p.Current.In(units.MustUnit("A"))
		t, _ := p.Torque.In(units.MustUnit("N*m"))
		s, _ := p.Speed.In(units.MustUnit("rpm"))
		w, _ := p.Power.In(units.MustUnit("W"))
		current = append(current, a)
		torque = append(torque, t)
		speed = append(speed, s)
		power = append(power, w)
		if w > power[peak] {
			peak = i
		}
	}

	out := cmd.OutOrStdout()
	printHeader(out, fmt.Sprintf("Motor Curve - %s at %s", spec.Name, q(voltage)))

	w := section(out, "SAMPLES")
	fmt.Fprintln(w, "  Current (A)\tTorque (N*m)\tSpeed (rpm)\tPower (W)\t")
	for i := range points {
		mark := ""
		if i == peak {
			mark = "◄ peak power"
		}
		fmt.Fprintf(w, "  %.*f\t%.*f\t%.*f\t%.*f\t%s\n",
			cfg.Precision, current[i], cfg.Precision, torque[i], cfg.Precision, speed[i], cfg.Precision, power[i], mark)
	}
	w.Flush()
	fmt.Fprintln(out)

	data := diagram.CurveData{
		Title:   fmt.Sprintf("%s output power at %s", spec.Name, q(voltage)),
		XLabel:  "Current (A)",
		YLabel:  "Power (W)",
		Series:  []diagram.Series{{Name: spec.Name, X: current, Y: power}},
		Markers: []diagram.Marker{{X: current[peak], Y: power[peak], Label: "peak"}},
	}
	if curveShowPlot {
		plot, err := diagram.DrawASCIICurve(data, 60, 12)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, plot)
	}
	if curveOutput != "" {
		path, err := diagram.ExportCurve(data, curveOutput)
		if err != nil {
			return fmt.Errorf("exporting curve: %w", err)
		}
		fmt.Fprintf(out, "Curve exported to: %s\n", path)
	}
	if curveXLSX != "" {
		rows := make([][]float64, len(points))
		for i := range points {
			rows[i] = []float64{current[i], torque[i], speed[i], power[i]}
		}
		err := export.WriteXLSX(curveXLSX, export.Table{
			Sheet:   spec.Name,
			Headers: []string{"Current (A)", "Torque (N*m)", "Speed (rpm)", "Power (W)"},
			Rows:    rows,
		})
		if err != nil {
			return fmt.Errorf("exporting samples: %w", err)
		}
		fmt.Fprintf(out, "Samples exported to: %s\n", curveXLSX)
	}
	return nil
}
