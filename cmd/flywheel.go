package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/alexiusacademia/mechcalc/internal/diagram"
	"github.com/alexiusacademia/mechcalc/internal/flywheel"
	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flywheelShape          string
	flywheelMass           units.Quantity
	flywheelRadius         units.Quantity
	flywheelSpeed          units.Quantity
	flywheelProjectileMass units.Quantity
	flywheelMotorName      string
	flywheelMotorCount     int
	flywheelRatio          float64
)

var flywheelCmd = &cobra.Command{
	Use:   "flywheel",
	Short: "Shooter flywheel energy and spin-up time",
	Long: heredoc.Doc(`
		Size a shooter flywheel. The game piece is assumed to leave at half
		the wheel's surface speed with no losses, so the wheel slows to

		  w' = w * sqrt(I / (I + m r^2 / 4))

		Spin-up assumes a linear torque-speed curve through --ratio
		(motor turns per wheel turn).

		Examples:
		  # 4 in diameter, 1.5 lb solid wheel at 4000 rpm on two NEOs
		  mechcalc flywheel --mass 1.5 --radius 2 --speed 4000 \
		    --projectile-mass 0.5 --motor NEO --motors 2

		  # Metric inputs with an overdriven ring
		  mechcalc flywheel --shape ring --mass "0.6 kg" --radius "5 cm" \
		    --speed 6000 --projectile-mass "140 g" --motor "Falcon 500" --ratio 0.67
	`),
	RunE: runFlywheel,
}

func init() {
	rootCmd.AddCommand(flywheelCmd)

	flywheelCmd.Flags().StringVar(&flywheelShape, "shape", "solid", "Mass distribution: solid or ring")
	quantityVar(flywheelCmd.Flags(), &flywheelMass, "mass", "0", "lb", "Wheel mass [required]")
	quantityVar(flywheelCmd.Flags(), &flywheelRadius, "radius", "0", "in", "Wheel radius [required]")
	quantityVar(flywheelCmd.Flags(), &flywheelSpeed, "speed", "0", "rpm", "Wheel speed before the shot [required]")
	quantityVar(flywheelCmd.Flags(), &flywheelProjectileMass, "projectile-mass", "0", "lb", "Game piece mass")
	flywheelCmd.Flags().StringVar(&flywheelMotorName, "motor", "NEO", "Motor name (see 'mechcalc motor list')")
	countVarP(flywheelCmd.Flags(), &flywheelMotorCount, "motors", "", 1, "Number of motors")
	flywheelCmd.Flags().Float64Var(&flywheelRatio, "ratio", 1, "Gear ratio, motor turns per wheel turn")

	flywheelCmd.MarkFlagRequired("mass")
	flywheelCmd.MarkFlagRequired("radius")
	flywheelCmd.MarkFlagRequired("speed")
}

func runFlywheel(cmd *cobra.Command, args []string) error {
	shape, err := flywheel.ParseShape(flywheelShape)
	if err != nil {
		return err
	}
	spec, err := cat.Motor(flywheelMotorName)
	if err != nil {
		return err
	}
	spec = spec.WithQuantity(flywheelMotorCount)

	res, err := flywheel.Calculate(flywheel.Params{
		Shape:          shape,
		Mass:           flywheelMass,
		Radius:         flywheelRadius,
		Speed:          flywheelSpeed,
		ProjectileMass: flywheelProjectileMass,
		Motor:          spec,
		Ratio:          flywheelRatio,
	})
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"moi":    res.MomentOfInertia.String(),
		"energy": res.Energy.String(),
		"windup": res.WindupTime.String(),
	}).Debug("flywheel")

	drop := 0.0
	if !flywheelSpeed.IsZero() {
		drop = 100 * (1 - res.SpeedAfterShot.Scalar()/flywheelSpeed.Scalar())
	}

	out := cmd.OutOrStdout()
	printHeader(out, "Flywheel Shooter")

	w := section(out, "WHEEL")
	fmt.Fprintf(w, "  Shape:\t%s\n", shape)
	fmt.Fprintf(w, "  Mass:\t%s\n", q(flywheelMass))
	fmt.Fprintf(w, "  Radius:\t%s\n", q(flywheelRadius))
	fmt.Fprintf(w, "  Moment of inertia:\t%s (%s)\n", res.MomentOfInertia.Fixed(cfg.Precision+4), qIn(res.MomentOfInertia, "lb*in^2"))
	fmt.Fprintf(w, "  Drive:\t%d x %s, %g:1\n", spec.Quantity, spec.Name, flywheelRatio)
	w.Flush()
	fmt.Fprintln(out)

	w = section(out, "SHOT")
	fmt.Fprintf(w, "  Speed before:\t%s\n", q(flywheelSpeed))
	fmt.Fprintf(w, "  Speed after:\t%s (%.1f%% drop)\n", q(res.SpeedAfterShot), drop)
	fmt.Fprintf(w, "  Stored energy:\t%s\n", q(res.Energy))
	fmt.Fprintf(w, "  Energy delivered:\t%s\n", q(res.EnergyDelivered))
	fmt.Fprintf(w, "  Exit velocity:\t%s\n", q(res.ExitVelocity))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("SPIN-UP", []string{
		fmt.Sprintf("From rest:       %s", q(res.WindupTime)),
		fmt.Sprintf("After a shot:    %s", q(res.RecoveryTime)),
	}))
	fmt.Fprintln(out)
	return nil
}
