package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/alexiusacademia/mechcalc/internal/gear"
	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	gearMotorName         string
	gearMotorCount        int
	gearMotorCurrentLimit units.Quantity
	gearMotorStage        stageFlags
)

var gearMotorCmd = &cobra.Command{
	Use:   "motor",
	Short: "Stage loads with torque from motors at a current limit",
	Long: heredoc.Doc(`
		Solve each motor at its nominal voltage and the current limit, then
		load one pinion per motor with the resulting torque.

		Examples:
		  # Two NEOs limited to 40 A driving 12:60 steel gears
		  mechcalc gear motor --motor NEO --motors 2 --current-limit 40 \
		    --pinion-teeth 12 --gear-teeth 60

		  # Current limit from config, aluminum driven gear
		  mechcalc gear motor --motor "Falcon 500" --pinion-teeth 14 \
		    --gear-teeth 56 --gear-material "Aluminum 7075-T6"
	`),
	RunE: runGearMotor,
}

func init() {
	gearCmd.AddCommand(gearMotorCmd)

	gearMotorCmd.Flags().StringVar(&gearMotorName, "motor", "CIM", "Motor name (see 'mechcalc motor list')")
	countVarP(gearMotorCmd.Flags(), &gearMotorCount, "motors", "", 1, "Number of motors, one pinion each")
	quantityVar(gearMotorCmd.Flags(), &gearMotorCurrentLimit, "current-limit", "-", "A", "Current limit per motor (default from config)")
	gearMotorStage.register(gearMotorCmd.Flags())

	gearMotorCmd.MarkFlagRequired("pinion-teeth")
	gearMotorCmd.MarkFlagRequired("gear-teeth")
}

func runGearMotor(cmd *cobra.Command, args []string) error {
	spec, err := cat.Motor(gearMotorName)
	if err != nil {
		return err
	}
	spec = spec.WithQuantity(gearMotorCount)

	limit := gearMotorCurrentLimit
	if !cmd.Flags().Changed("current-limit") {
		limit = cfg.CurrentLimit
	}
	p, err := gearMotorStage.params()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"motor":         spec.Name,
		"motors":        spec.Quantity,
		"current_limit": limit.String(),
	}).Debug("motor driven stage")

	res, err := gear.CalculateState(spec, limit, p)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeader(out, "Motor Driven Stage Loads")
	w := section(out, "DRIVE")
	fmt.Fprintf(w, "  Motor:\t%d x %s\n", spec.Quantity, spec.Name)
	fmt.Fprintf(w, "  Current limit:\t%s per motor\n", q(limit))
	fmt.Fprintf(w, "  Voltage:\t%s\n", q(spec.NominalVoltage))
	w.Flush()
	fmt.Fprintln(out)
	return printStage(out, p, res)
}
