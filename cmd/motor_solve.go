package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/alexiusacademia/mechcalc/internal/motor"
	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	solveMotorName    string
	solveMotorCount   int
	solveVoltage      units.Quantity
	solveCurrent      units.Quantity
	solveTorque       units.Quantity
	solveSpeed        units.Quantity
	solveCurrentLimit units.Quantity
)

// seedFlags maps flag names to the solver variables they seed.
var seedFlags = []struct {
	name string
	v    motor.Variable
	q    *units.Quantity
}{
	{"voltage", motor.Voltage, &solveVoltage},
	{"current", motor.Current, &solveCurrent},
	{"torque", motor.Torque, &solveTorque},
	{"speed", motor.Speed, &solveSpeed},
}

var motorSolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a motor operating point from two known values",
	Long: heredoc.Doc(`
		Find the full operating point of one motor from any two of
		--voltage, --current, --torque and --speed. Current and torque
		together do not determine a state. With more than two, the first
		independent pair in voltage, current, torque, speed order is used.

		Values are per motor; --motors scales the reported totals.
		Inputs beyond stall are not clamped.

		Examples:
		  # CIM at 12 V drawing 40 A
		  mechcalc motor solve --motor CIM --voltage 12 --current 40

		  # Voltage needed for 2 N*m at 3000 rpm on a Falcon 500
		  mechcalc motor solve --motor "Falcon 500" --torque "2 N*m" --speed 3000
	`),
	RunE: runMotorSolve,
}

func init() {
	motorCmd.AddCommand(motorSolveCmd)

	motorSolveCmd.Flags().StringVar(&solveMotorName, "motor", "CIM", "Motor name (see 'mechcalc motor list')")
	countVarP(motorSolveCmd.Flags(), &solveMotorCount, "motors", "", 1, "Number of ganged motors")
	quantityVar(motorSolveCmd.Flags(), &solveVoltage, "voltage", "-", "V", "Applied voltage")
	quantityVar(motorSolveCmd.Flags(), &solveCurrent, "current", "-", "A", "Current per motor")
	quantityVar(motorSolveCmd.Flags(), &solveTorque, "torque", "-", "N*m", "Torque per motor")
	quantityVar(motorSolveCmd.Flags(), &solveSpeed, "speed", "-", "rpm", "Shaft speed")
	quantityVar(motorSolveCmd.Flags(), &solveCurrentLimit, "current-limit", "-", "A", "Current limit to check against (default from config)")
}

func runMotorSolve(cmd *cobra.Command, args []string) error {
	spec, err := cat.Motor(solveMotorName)
	if err != nil {
		return err
	}
	spec = spec.WithQuantity(solveMotorCount)

	knowns := motor.Knowns{}
	for _, f := range seedFlags {
		if cmd.Flags().Changed(f.name) {
			knowns[f.v] = *f.q
		}
	}
	limit := solveCurrentLimit
	if !cmd.Flags().Changed("current-limit") {
		limit = cfg.CurrentLimit
	}

	st := motor.NewState(spec, limit, knowns)
	if err := st.Solve(); err != nil {
		return err
	}
	power, err := st.Power()
	if err != nil {
		return err
	}
	over, err := st.OverLimit()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"motor":   spec.Name,
		"voltage": st.Voltage.String(),
		"current": st.Current.String(),
		"torque":  st.Torque.String(),
		"speed":   st.Speed.String(),
	}).Debug("solved motor state")

	out := cmd.OutOrStdout()
	printHeader(out, "Motor Operating Point - "+spec.Name)

	w := section(out, "KNOWN")
	for _, f := range seedFlags {
		if k, ok := knowns[f.v]; ok {
			fmt.Fprintf(w, "  %s:\t%s\n", f.v, q(k))
		}
	}
	w.Flush()
	fmt.Fprintln(out)

	w = section(out, "PER MOTOR")
	fmt.Fprintf(w, "  Voltage:\t%s\n", q(st.Voltage))
	fmt.Fprintf(w, "  Current:\t%s\n", q(st.Current))
	fmt.Fprintf(w, "  Torque:\t%s\n", q(st.Torque))
	fmt.Fprintf(w, "  Speed:\t%s\n", q(st.Speed))
	fmt.Fprintf(w, "  Output power:\t%s\n", q(power))
	w.Flush()
	fmt.Fprintln(out)

	if spec.Quantity > 1 {
		w = section(out, fmt.Sprintf("TOTAL (%d MOTORS)", spec.Quantity))
		fmt.Fprintf(w, "  Current:\t%s\n", q(st.TotalCurrent()))
		fmt.Fprintf(w, "  Torque:\t%s\n", q(st.TotalTorque()))
		fmt.Fprintf(w, "  Output power:\t%s\n", q(power.Scale(float64(spec.Quantity))))
		w.Flush()
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "STATUS:")
	fmt.Fprintln(out, rule)
	switch {
	case over:
		fmt.Fprintf(out, "  ⚠ Current exceeds the %s limit\n", q(limit))
	case st.Speed.Scalar() < 0:
		fmt.Fprintln(out, "  ⚠ Beyond stall: the motor is being back-driven")
	default:
		fmt.Fprintln(out, "  ✓ Within current limit")
	}
	fmt.Fprintln(out)
	return nil
}
