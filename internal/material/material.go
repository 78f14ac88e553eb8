package material

import (
	"fmt"

	"github.com/alexiusacademia/mechcalc/internal/units"
)

// Material is a gear material with its allowable bending stress for the
// Lewis equation.
type Material struct {
	Name         string
	SafeStrength units.Quantity // pressure
}

// Validate checks that SafeStrength is a stress.
func (m Material) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("material: missing name")
	}
	if !m.SafeStrength.Unit().Compatible(units.MustUnit("psi")) {
		return fmt.Errorf("material %q: safe strength %s is not a stress: %w",
			m.Name, m.SafeStrength, units.ErrIncompatibleUnits)
	}
	return nil
}

// Allowable static bending stresses (Lewis s0), psi.
// Values are conservative for FRC-style intermittent duty.
var builtin = []Material{
	{Name: "Aluminum 6061-T6", SafeStrength: units.MustNew(13000, "psi")},
	{Name: "Aluminum 7075-T6", SafeStrength: units.MustNew(24000, "psi")},
	{Name: "Steel 1018", SafeStrength: units.MustNew(18000, "psi")},
	{Name: "Steel 4140", SafeStrength: units.MustNew(30000, "psi")},
	{Name: "Brass 360", SafeStrength: units.MustNew(10000, "psi")},
	{Name: "Bronze SAE 65", SafeStrength: units.MustNew(12000, "psi")},
	{Name: "Cast Iron", SafeStrength: units.MustNew(8000, "psi")},
	{Name: "Delrin", SafeStrength: units.MustNew(5000, "psi")},
	{Name: "Nylon 6/6", SafeStrength: units.MustNew(4000, "psi")},
	{Name: "Polycarbonate", SafeStrength: units.MustNew(3500, "psi")},
}

// Builtin returns a copy of the built-in material table.
func Builtin() []Material {
	out := make([]Material, len(builtin))
	copy(out, builtin)
	return out
}
