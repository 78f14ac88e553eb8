package units

import "math"

// symbol is a named unit with its SI scale factor and dimension.
type symbol struct {
	factor float64
	dim    Dimension
}

var (
	dLength   = dim(1, 0, 0, 0, 0)
	dMass     = dim(0, 1, 0, 0, 0)
	dTime     = dim(0, 0, 1, 0, 0)
	dCurrent  = dim(0, 0, 0, 1, 0)
	dAngle    = dim(0, 0, 0, 0, 1)
	dForce    = dim(1, 1, -2, 0, 0)
	dPressure = dim(-1, 1, -2, 0, 0)
	dEnergy   = dim(2, 1, -2, 0, 0)
	dPower    = dim(2, 1, -3, 0, 0)
	dVoltage  = dim(2, 1, -3, -1, 0)
	dOhm      = dim(2, 1, -3, -2, 0)
	dVolume   = dim(3, 0, 0, 0, 0)
)

const (
	metersPerInch   = 0.0254
	kgPerPound      = 0.45359237
	standardGravity = 9.80665
	newtonsPerLbf   = kgPerPound * standardGravity
	pascalsPerPsi   = newtonsPerLbf / (metersPerInch * metersPerInch)
)

// registry maps unit symbols to SI factors. Factors are exact definitions
// where one exists.
var registry = map[string]symbol{
	// length
	"m":  {1, dLength},
	"cm": {1e-2, dLength},
	"mm": {1e-3, dLength},
	"in": {metersPerInch, dLength},
	"ft": {12 * metersPerInch, dLength},

	// mass
	"kg": {1, dMass},
	"g":  {1e-3, dMass},
	"lb": {kgPerPound, dMass},
	"oz": {kgPerPound / 16, dMass},

	// time
	"s":   {1, dTime},
	"ms":  {1e-3, dTime},
	"min": {60, dTime},
	"hr":  {3600, dTime},

	// current
	"A":  {1, dCurrent},
	"mA": {1e-3, dCurrent},

	// angle
	"rad": {1, dAngle},
	"deg": {math.Pi / 180, dAngle},
	"rev": {2 * math.Pi, dAngle},
	"rpm": {2 * math.Pi / 60, dim(0, 0, -1, 0, 1)},

	// force
	"N":   {1, dForce},
	"lbf": {newtonsPerLbf, dForce},
	"ozf": {newtonsPerLbf / 16, dForce},
	"kgf": {standardGravity, dForce},

	// pressure
	"Pa":  {1, dPressure},
	"kPa": {1e3, dPressure},
	"MPa": {1e6, dPressure},
	"psi": {pascalsPerPsi, dPressure},
	"bar": {1e5, dPressure},
	"atm": {101325, dPressure},

	// energy, power
	"J":  {1, dEnergy},
	"W":  {1, dPower},
	"hp": {745.69987158227022, dPower},

	// electrical
	"V":   {1, dVoltage},
	"ohm": {1, dOhm},

	// volume, flow
	"L":   {1e-3, dVolume},
	"mL":  {1e-6, dVolume},
	"cfm": {math.Pow(12*metersPerInch, 3) / 60, dim(3, 0, -1, 0, 0)},
}

// Known reports whether s is a registered unit symbol.
func Known(s string) bool {
	_, ok := registry[s]
	return ok
}
