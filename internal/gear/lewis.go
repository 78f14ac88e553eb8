package gear

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexiusacademia/mechcalc/internal/units"
)

// ErrUnsupportedPressureAngle is returned when resolving an angle with no
// Lewis regression.
var ErrUnsupportedPressureAngle = errors.New("gear: unsupported pressure angle")

// PressureAngle is one of the standard involute pressure angles with a
// Lewis Y fit. The set is closed.
type PressureAngle int

const (
	PressureAngle14p5 PressureAngle = iota
	PressureAngle20
)

var pressureAngleDegrees = map[PressureAngle]float64{
	PressureAngle14p5: 14.5,
	PressureAngle20:   20,
}

// Lewis form factor fits Y = A - B/N, from inverse regression over the
// standard full-depth tooth tables.
var lewisFit = map[PressureAngle]struct{ a, b float64 }{
	PressureAngle14p5: {0.3897948785, 2.154375},
	PressureAngle20:   {0.463031954, 2.71502659},
}

// Degrees returns the angle in degrees.
func (pa PressureAngle) Degrees() float64 {
	return pressureAngleDegrees[pa]
}

// Quantity returns the angle as a quantity in degrees.
func (pa PressureAngle) Quantity() units.Quantity {
	return units.MustNew(pa.Degrees(), "deg")
}

func (pa PressureAngle) String() string {
	return strconv.FormatFloat(pa.Degrees(), 'f', -1, 64) + "°"
}

// PressureAngleOf resolves an angle quantity to a supported pressure
// angle.
func PressureAngleOf(q units.Quantity) (PressureAngle, error) {
	deg, err := q.In(units.MustUnit("deg"))
	if err != nil {
		return 0, err
	}
	for pa, d := range pressureAngleDegrees {
		if math.Abs(deg-d) < 1e-9 {
			return pa, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedPressureAngle, q)
}

// ParsePressureAngle accepts "20", "20°", "20deg" or "14.5".
func ParsePressureAngle(s string) (PressureAngle, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "°")
	q, err := units.ParseDefault(s, units.MustUnit("deg"))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedPressureAngle, s)
	}
	return PressureAngleOf(q)
}

// LewisYFactor estimates the Lewis form factor for a gear with the given
// tooth count.
func LewisYFactor(teeth int, pa PressureAngle) float64 {
	fit := lewisFit[pa]
	return fit.a - fit.b/float64(teeth)
}
