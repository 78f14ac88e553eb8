package motor

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/mechcalc/internal/units"
)

// SI units the solver works in.
var (
	volts   = units.MustUnit("V")
	amps    = units.MustUnit("A")
	newtonM = units.MustUnit("N*m")
	radPerS = units.MustUnit("rad/s")
	ohms    = units.MustUnit("ohm")
)

// NominalVoltage is the battery voltage nameplate data is quoted at.
var NominalVoltage = units.MustNew(12, "V")

// Spec holds a motor's nameplate data. Quantity is the number of
// identical motors ganged on one output.
type Spec struct {
	Name           string
	StallTorque    units.Quantity
	StallCurrent   units.Quantity
	FreeSpeed      units.Quantity
	FreeCurrent    units.Quantity
	NominalVoltage units.Quantity
	Quantity       int
}

// WithQuantity returns a copy of s ganged n times.
func (s Spec) WithQuantity(n int) Spec {
	s.Quantity = n
	return s
}

// constants are the linear model coefficients in SI units.
type constants struct {
	kt float64 // torque per amp, N*m/A
	r  float64 // winding resistance, ohm
	kv float64 // speed per back-EMF volt, rad/s/V
}

func (s Spec) constants() (constants, error) {
	stallTorque, err := s.StallTorque.In(newtonM)
	if err != nil {
		return constants{}, fmt.Errorf("motor %q stall torque: %w", s.Name, err)
	}
	stallCurrent, err := s.StallCurrent.In(amps)
	if err != nil {
		return constants{}, fmt.Errorf("motor %q stall current: %w", s.Name, err)
	}
	freeSpeed, err := s.FreeSpeed.In(radPerS)
	if err != nil {
		return constants{}, fmt.Errorf("motor %q free speed: %w", s.Name, err)
	}
	freeCurrent, err := s.FreeCurrent.In(amps)
	if err != nil {
		return constants{}, fmt.Errorf("motor %q free current: %w", s.Name, err)
	}
	v := s.NominalVoltage
	if v.IsZero() {
		v = NominalVoltage
	}
	nominal, err := v.In(volts)
	if err != nil {
		return constants{}, fmt.Errorf("motor %q nominal voltage: %w", s.Name, err)
	}

	r := nominal / stallCurrent
	return constants{
		kt: stallTorque / stallCurrent,
		r:  r,
		kv: freeSpeed / (nominal - freeCurrent*r),
	}, nil
}

// Resistance returns the winding resistance implied by the nameplate
// stall current at nominal voltage.
func (s Spec) Resistance() (units.Quantity, error) {
	c, err := s.constants()
	if err != nil {
		return units.Quantity{}, err
	}
	return units.New(c.r, ohms), nil
}

// Validate checks the nameplate units, their signs and the motor count.
func (s Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("motor: missing name")
	}
	if s.Quantity < 0 {
		return fmt.Errorf("motor %q: negative quantity %d", s.Name, s.Quantity)
	}
	c, err := s.constants()
	if err != nil {
		return err
	}
	if !finitePositive(c.kt) || !finitePositive(c.r) || !finitePositive(c.kv) {
		return fmt.Errorf("motor %q: nameplate values must be positive with free current below stall", s.Name)
	}
	return nil
}

func finitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
