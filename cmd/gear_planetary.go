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
	planetaryTorque      units.Quantity
	planetaryPlanetaries int
	planetaryStage       stageFlags
)

var gearPlanetaryCmd = &cobra.Command{
	Use:   "planetary",
	Short: "Stall and safe loads of a stage driven by a known torque",
	Long: heredoc.Doc(`
		Calculate stall forces on a pinion and its driven gear, and compare
		them with the Lewis safe loads.

		Each of --planetaries parallel pinions carries --torque. The driven
		gear sees the larger of the single mesh force and the force implied
		by the combined torque at its own pitch radius. Any zero input
		yields an all-zero result.

		Examples:
		  # Three planets on a 12:36 stage, 10 lbf*in per planet
		  mechcalc gear planetary --torque 10 --planetaries 3 \
		    --pinion-teeth 12 --gear-teeth 36 --dp 20 --pressure-angle 20

		  # Metric torque, Delrin driven gear
		  mechcalc gear planetary --torque "1.2 N*m" --pinion-teeth 14 \
		    --gear-teeth 50 --gear-material Delrin
	`),
	RunE: runGearPlanetary,
}

func init() {
	gearCmd.AddCommand(gearPlanetaryCmd)

	quantityVar(gearPlanetaryCmd.Flags(), &planetaryTorque, "torque", "0", "lbf*in", "Torque on each pinion [required]")
	countVarP(gearPlanetaryCmd.Flags(), &planetaryPlanetaries, "planetaries", "", 1, "Number of parallel pinions")
	planetaryStage.register(gearPlanetaryCmd.Flags())

	gearPlanetaryCmd.MarkFlagRequired("torque")
	gearPlanetaryCmd.MarkFlagRequired("pinion-teeth")
	gearPlanetaryCmd.MarkFlagRequired("gear-teeth")
}

func runGearPlanetary(cmd *cobra.Command, args []string) error {
	p, err := planetaryStage.params()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"torque":      planetaryTorque.String(),
		"planetaries": planetaryPlanetaries,
	}).Debug("planetary stage")

	res, err := gear.CalculateStateForPlanetary(gear.PlanetaryParams{
		InputTorque:    planetaryTorque,
		NumPlanetaries: planetaryPlanetaries,
		GearParams:     p,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeader(out, "Planetary Stage Loads")
	w := section(out, "INPUT")
	fmt.Fprintf(w, "  Torque per pinion:\t%s\n", q(planetaryTorque))
	fmt.Fprintf(w, "  Parallel pinions:\t%d\n", planetaryPlanetaries)
	w.Flush()
	fmt.Fprintln(out)
	return printStage(out, p, res)
}
