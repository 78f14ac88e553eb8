package gear

import (
	"fmt"

	"github.com/alexiusacademia/mechcalc/internal/material"
	"github.com/alexiusacademia/mechcalc/internal/motor"
	"github.com/alexiusacademia/mechcalc/internal/units"
)

var lbf = units.MustUnit("lbf")

// Load pairs the stall force on a gear's teeth with what they can safely
// carry.
type Load struct {
	StallForce units.Quantity
	SafeLoad   units.Quantity
}

// FactorOfSafety is SafeLoad/StallForce, or 0 with no stall force.
func (l Load) FactorOfSafety() (float64, error) {
	return FactorOfSafety(l.SafeLoad, l.StallForce)
}

// StageResult holds the loads on the pinions and the driven gear of a
// stage.
type StageResult struct {
	Pinion Load
	Gear   Load
}

func zeroStage() StageResult {
	zero := Load{StallForce: units.New(0, lbf), SafeLoad: units.New(0, lbf)}
	return StageResult{Pinion: zero, Gear: zero}
}

// GearParams describes a pinion and the gear it drives.
type GearParams struct {
	DiametralPitch units.Quantity // teeth per inch of pitch diameter, 1/in
	PressureAngle  PressureAngle

	PinionTeeth    int
	PinionMaterial material.Material
	PinionWidth    units.Quantity

	GearTeeth    int
	GearMaterial material.Material
	GearWidth    units.Quantity
}

// PlanetaryParams drives GearParams with NumPlanetaries parallel pinions,
// each carrying InputTorque.
type PlanetaryParams struct {
	InputTorque    units.Quantity
	NumPlanetaries int
	GearParams
}

func (p PlanetaryParams) degenerate() bool {
	return p.PinionTeeth <= 0 ||
		p.GearTeeth <= 0 ||
		p.NumPlanetaries <= 0 ||
		p.DiametralPitch.IsZero() ||
		p.PinionWidth.IsZero() ||
		p.GearWidth.IsZero() ||
		p.InputTorque.IsZero()
}

// SafeToothLoad is the Lewis bending load limit of one tooth, in lbf:
// safe stress * face width * Y / diametral pitch. Zero teeth, width or
// pitch give 0 lbf.
func SafeToothLoad(teeth int, m material.Material, width, diametralPitch units.Quantity, pa PressureAngle) (units.Quantity, error) {
	if teeth <= 0 || width.IsZero() || diametralPitch.IsZero() {
		return units.New(0, lbf), nil
	}
	load := m.SafeStrength.
		Mul(width).
		Scale(LewisYFactor(teeth, pa)).
		Div(diametralPitch)
	out, err := load.To(lbf)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("gear: safe tooth load for %q: %w", m.Name, err)
	}
	return out, nil
}

// PitchRadius is half the pitch diameter teeth/diametralPitch. A zero
// pitch or tooth count gives 0 in.
func PitchRadius(diametralPitch units.Quantity, teeth int) units.Quantity {
	if teeth <= 0 || diametralPitch.IsZero() {
		return units.MustNew(0, "in")
	}
	return diametralPitch.Scale(1 / float64(teeth)).Inverse().Scale(0.5)
}

// CalculateStateForPlanetary finds the stall and safe loads of a stage
// where NumPlanetaries pinions each apply InputTorque to one driven gear.
// Any zero governing input yields an all-zero result.
func CalculateStateForPlanetary(p PlanetaryParams) (StageResult, error) {
	if p.degenerate() {
		return zeroStage(), nil
	}

	pinionSafe, err := SafeToothLoad(p.PinionTeeth, p.PinionMaterial, p.PinionWidth, p.DiametralPitch, p.PressureAngle)
	if err != nil {
		return StageResult{}, err
	}
	gearSafe, err := SafeToothLoad(p.GearTeeth, p.GearMaterial, p.GearWidth, p.DiametralPitch, p.PressureAngle)
	if err != nil {
		return StageResult{}, err
	}

	pinionRadius := PitchRadius(p.DiametralPitch, p.PinionTeeth)
	pinionForce, err := p.InputTorque.Div(pinionRadius).To(lbf)
	if err != nil {
		return StageResult{}, fmt.Errorf("gear: pinion force: %w", err)
	}

	gearInputForce := pinionForce
	gearRadius := PitchRadius(p.DiametralPitch, p.GearTeeth)
	gearAxleTorque := gearInputForce.Scale(float64(p.NumPlanetaries)).Mul(gearRadius)
	gearOutputForce, err := gearAxleTorque.Div(gearRadius).To(lbf)
	if err != nil {
		return StageResult{}, fmt.Errorf("gear: gear output force: %w", err)
	}
	gearStall, err := units.MaxAbs(gearInputForce, gearOutputForce)
	if err != nil {
		return StageResult{}, err
	}

	return StageResult{
		Pinion: Load{StallForce: pinionForce, SafeLoad: pinionSafe},
		Gear:   Load{StallForce: gearStall, SafeLoad: gearSafe},
	}, nil
}

// CalculateState runs the motor at currentLimit and nominal voltage and
// feeds the per-motor torque into a stage with one pinion per motor.
func CalculateState(spec motor.Spec, currentLimit units.Quantity, p GearParams) (StageResult, error) {
	if currentLimit.IsZero() {
		return zeroStage(), nil
	}
	v := spec.NominalVoltage
	if v.IsZero() {
		v = motor.NominalVoltage
	}
	st := motor.NewState(spec, currentLimit, motor.Knowns{
		motor.Current: currentLimit,
		motor.Voltage: v,
	})
	if err := st.Solve(); err != nil {
		return StageResult{}, err
	}
	return CalculateStateForPlanetary(PlanetaryParams{
		InputTorque:    st.Torque,
		NumPlanetaries: spec.Quantity,
		GearParams:     p,
	})
}

// FactorOfSafety is safeLoad/|stallLoad|. A zero stall load gives 0 rather
// than Inf; reverse loads count by magnitude.
func FactorOfSafety(safeLoad, stallLoad units.Quantity) (float64, error) {
	if stallLoad.IsZero() {
		return 0, nil
	}
	return safeLoad.Div(stallLoad.Abs()).In(units.Dimensionless)
}
