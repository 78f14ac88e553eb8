package motor

import (
	"fmt"

	"github.com/alexiusacademia/mechcalc/internal/units"
)

// CurvePoint is one per-motor operating point on a characteristic curve.
type CurvePoint struct {
	Current units.Quantity
	Torque  units.Quantity
	Speed   units.Quantity
	Power   units.Quantity
}

// Curve samples the motor at voltage for n currents evenly spaced from
// free current to stall current.
func Curve(spec Spec, voltage units.Quantity, n int) ([]CurvePoint, error) {
	if n < 2 {
		return nil, fmt.Errorf("motor: curve needs at least 2 points, got %d", n)
	}
	span, err := spec.StallCurrent.Sub(spec.FreeCurrent)
	if err != nil {
		return nil, fmt.Errorf("motor %q: %w", spec.Name, err)
	}

	points := make([]CurvePoint, 0, n)
	for i := 0; i < n; i++ {
		current, err := spec.FreeCurrent.To(spec.StallCurrent.Unit())
		if err != nil {
			return nil, err
		}
		current, _ = current.Add(span.Scale(float64(i) / float64(n-1)))

		st := NewState(spec, units.Quantity{}, Knowns{Voltage: voltage, Current: current})
		if err := st.Solve(); err != nil {
			return nil, err
		}
		power, err := st.Power()
		if err != nil {
			return nil, err
		}
		points = append(points, CurvePoint{
			Current: st.Current,
			Torque:  st.Torque,
			Speed:   st.Speed,
			Power:   power,
		})
	}
	return points, nil
}
