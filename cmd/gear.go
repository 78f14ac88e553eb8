package cmd

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/alexiusacademia/mechcalc/internal/diagram"
	"github.com/alexiusacademia/mechcalc/internal/gear"
	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var gearCmd = &cobra.Command{
	Use:   "gear",
	Short: "Gear tooth loads and factors of safety",
	Long: heredoc.Doc(`
		Check gear teeth against the Lewis bending equation.

		Subcommands:
		  load       - Safe tooth load of a single gear
		  planetary  - Stall and safe loads of a stage driven by a known torque
		  motor      - Same, with the torque taken from motors at a current limit
	`),
}

func init() {
	rootCmd.AddCommand(gearCmd)
}

// stageFlags are the gear pair inputs shared by the planetary and motor
// subcommands.
type stageFlags struct {
	diametralPitch units.Quantity
	pressureAngle  string

	pinionTeeth    int
	pinionMaterial string
	pinionWidth    units.Quantity

	gearTeeth    int
	gearMaterial string
	gearWidth    units.Quantity
}

func (f *stageFlags) register(fs *pflag.FlagSet) {
	quantityVar(fs, &f.diametralPitch, "dp", "20", "1/in", "Diametral pitch, teeth per inch of pitch diameter")
	fs.StringVar(&f.pressureAngle, "pressure-angle", "", "Pressure angle, 14.5 or 20 (default from config)")

	countVarP(fs, &f.pinionTeeth, "pinion-teeth", "", 0, "Pinion tooth count [required]")
	fs.StringVar(&f.pinionMaterial, "pinion-material", "Steel 4140", "Pinion material")
	quantityVar(fs, &f.pinionWidth, "pinion-width", "0.5", "in", "Pinion face width")

	countVarP(fs, &f.gearTeeth, "gear-teeth", "", 0, "Driven gear tooth count [required]")
	fs.StringVar(&f.gearMaterial, "gear-material", "Steel 4140", "Driven gear material")
	quantityVar(fs, &f.gearWidth, "gear-width", "0.5", "in", "Driven gear face width")
}

func (f *stageFlags) params() (gear.GearParams, error) {
	pa := cfg.PressureAngle
	if f.pressureAngle != "" {
		var err error
		if pa, err = gear.ParsePressureAngle(f.pressureAngle); err != nil {
			return gear.GearParams{}, err
		}
	}
	pinion, err := cat.Material(f.pinionMaterial)
	if err != nil {
		return gear.GearParams{}, err
	}
	driven, err := cat.Material(f.gearMaterial)
	if err != nil {
		return gear.GearParams{}, err
	}
	return gear.GearParams{
		DiametralPitch: f.diametralPitch,
		PressureAngle:  pa,
		PinionTeeth:    f.pinionTeeth,
		PinionMaterial: pinion,
		PinionWidth:    f.pinionWidth,
		GearTeeth:      f.gearTeeth,
		GearMaterial:   driven,
		GearWidth:      f.gearWidth,
	}, nil
}

// printStage reports a stage result with a factor of safety for both
// members.
func printStage(out io.Writer, p gear.GearParams, res gear.StageResult) error {
	pinionFOS, err := res.Pinion.FactorOfSafety()
	if err != nil {
		return err
	}
	gearFOS, err := res.Gear.FactorOfSafety()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"pinion_stall": res.Pinion.StallForce.String(),
		"gear_stall":   res.Gear.StallForce.String(),
		"pinion_fos":   pinionFOS,
		"gear_fos":     gearFOS,
	}).Debug("stage loads")

	w := section(out, "GEOMETRY")
	fmt.Fprintf(w, "  Diametral pitch:\t%s\n", q(p.DiametralPitch))
	fmt.Fprintf(w, "  Pressure angle:\t%s\n", p.PressureAngle)
	fmt.Fprintf(w, "  Pinion:\t%d teeth, %s wide, %s\n", p.PinionTeeth, q(p.PinionWidth), p.PinionMaterial.Name)
	fmt.Fprintf(w, "  Driven gear:\t%d teeth, %s wide, %s\n", p.GearTeeth, q(p.GearWidth), p.GearMaterial.Name)
	w.Flush()
	fmt.Fprintln(out)

	w = section(out, "TOOTH LOADS")
	fmt.Fprintf(w, "  \tStall force\tSafe load\tFactor of safety\n")
	fmt.Fprintf(w, "  Pinion\t%s\t%s\t%s\n", q(res.Pinion.StallForce), q(res.Pinion.SafeLoad), fosMark(pinionFOS))
	fmt.Fprintf(w, "  Driven gear\t%s\t%s\t%s\n", q(res.Gear.StallForce), q(res.Gear.SafeLoad), fosMark(gearFOS))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("MINIMUM FACTOR OF SAFETY", []string{
		fmt.Sprintf("Pinion:       %.2f", pinionFOS),
		fmt.Sprintf("Driven gear:  %.2f", gearFOS),
	}))
	fmt.Fprintln(out)
	return nil
}
