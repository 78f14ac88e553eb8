package motor

import "github.com/alexiusacademia/mechcalc/internal/units"

func nameplate(name string, stallTorqueNm, stallCurrentA, freeSpeedRPM, freeCurrentA float64) Spec {
	return Spec{
		Name:           name,
		StallTorque:    units.MustNew(stallTorqueNm, "N*m"),
		StallCurrent:   units.MustNew(stallCurrentA, "A"),
		FreeSpeed:      units.MustNew(freeSpeedRPM, "rpm"),
		FreeCurrent:    units.MustNew(freeCurrentA, "A"),
		NominalVoltage: NominalVoltage,
		Quantity:       1,
	}
}

// Published 12 V nameplate data for common FRC motors.
var builtin = []Spec{
	nameplate("CIM", 2.41, 131, 5330, 2.7),
	nameplate("Mini CIM", 1.41, 89, 5840, 3),
	nameplate("BAG", 0.43, 53, 13180, 1.8),
	nameplate("775pro", 0.71, 134, 18730, 0.7),
	nameplate("NEO", 2.6, 105, 5676, 1.8),
	nameplate("NEO 550", 0.97, 100, 11000, 1.4),
	nameplate("NEO Vortex", 3.6, 211, 6784, 3.6),
	nameplate("Falcon 500", 4.69, 257, 6380, 1.5),
	nameplate("Kraken X60", 7.09, 366, 6000, 2),
}

// Builtin returns a copy of the built-in motor table.
func Builtin() []Spec {
	out := make([]Spec, len(builtin))
	copy(out, builtin)
	return out
}
