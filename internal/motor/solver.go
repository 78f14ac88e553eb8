package motor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexiusacademia/mechcalc/internal/units"
	"gonum.org/v1/gonum/mat"
)

// Variable names one of the four operating-point quantities.
type Variable int

const (
	Voltage Variable = iota
	Current
	Torque
	Speed
	numVariables
)

var variableNames = [numVariables]string{"voltage", "current", "torque", "speed"}

func (v Variable) String() string {
	if v < 0 || v >= numVariables {
		return fmt.Sprintf("Variable(%d)", int(v))
	}
	return variableNames[v]
}

func (v Variable) si() units.Unit {
	switch v {
	case Voltage:
		return volts
	case Current:
		return amps
	case Torque:
		return newtonM
	}
	return radPerS
}

// Knowns seeds the solver with per-motor values.
type Knowns map[Variable]units.Quantity

// ErrUnderdetermined is matched by every UnderdeterminedStateError.
var ErrUnderdetermined = errors.New("motor: underdetermined operating state")

// UnderdeterminedStateError reports seeds that do not pin down a unique
// operating point.
type UnderdeterminedStateError struct {
	Known []Variable
}

func (e *UnderdeterminedStateError) Error() string {
	names := make([]string, len(e.Known))
	for i, v := range e.Known {
		names[i] = v.String()
	}
	if len(names) == 0 {
		return "motor: underdetermined operating state: nothing known"
	}
	return "motor: underdetermined operating state: only " + strings.Join(names, ", ") + " known"
}

func (e *UnderdeterminedStateError) Unwrap() error {
	return ErrUnderdetermined
}

// State is the solver scratch record for one calculation. Voltage,
// Current, Torque and Speed are per motor and filled by Solve.
type State struct {
	Spec         Spec
	CurrentLimit units.Quantity
	Knowns       Knowns

	Voltage units.Quantity
	Current units.Quantity
	Torque  units.Quantity
	Speed   units.Quantity
}

// NewState returns a state for spec seeded with knowns.
func NewState(spec Spec, currentLimit units.Quantity, knowns Knowns) *State {
	return &State{Spec: spec, CurrentLimit: currentLimit, Knowns: knowns}
}

// maxCondition bounds the condition number of a solvable seed pair.
// Current and torque together give an exactly singular system.
const maxCondition = 1e12

// Solve fills the operating point from the two linear relations
//
//	torque = kt * current
//	speed  = kv * (voltage - current*R)
//
// plus two seeds. With more than two seeds the first independent pair in
// Voltage, Current, Torque, Speed order wins. Seeds outside the motor's
// range are not clamped.
func (s *State) Solve() error {
	c, err := s.Spec.constants()
	if err != nil {
		return err
	}

	var known []Variable
	seed := make(map[Variable]float64, len(s.Knowns))
	for v := Voltage; v < numVariables; v++ {
		q, ok := s.Knowns[v]
		if !ok {
			continue
		}
		x, err := q.In(v.si())
		if err != nil {
			return fmt.Errorf("motor %q %s seed: %w", s.Spec.Name, v, err)
		}
		known = append(known, v)
		seed[v] = x
	}

	for i := 0; i < len(known); i++ {
		for j := i + 1; j < len(known); j++ {
			x, ok := solvePair(c, known[i], seed[known[i]], known[j], seed[known[j]])
			if ok {
				return s.fill(x)
			}
		}
	}
	return &UnderdeterminedStateError{Known: known}
}

// solvePair solves the 4x4 system in (V, I, T, w) for one seed pair.
func solvePair(c constants, a Variable, av float64, b Variable, bv float64) ([]float64, bool) {
	rows := mat.NewDense(4, 4, []float64{
		0, -c.kt, 1, 0,
		-c.kv, c.kv * c.r, 0, 1,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	rows.Set(2, int(a), 1)
	rows.Set(3, int(b), 1)
	rhs := mat.NewVecDense(4, []float64{0, 0, av, bv})

	var lu mat.LU
	lu.Factorize(rows)
	if cond := lu.Cond(); cond > maxCondition {
		return nil, false
	}
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, rhs); err != nil {
		return nil, false
	}
	return []float64{x.AtVec(0), x.AtVec(1), x.AtVec(2), x.AtVec(3)}, true
}

func (s *State) fill(x []float64) error {
	var err error
	s.Voltage = units.New(x[Voltage], volts)
	s.Current = units.New(x[Current], amps)
	if s.Torque, err = units.New(x[Torque], newtonM).To(s.Spec.StallTorque.Unit()); err != nil {
		return err
	}
	if s.Speed, err = units.New(x[Speed], radPerS).To(s.Spec.FreeSpeed.Unit()); err != nil {
		return err
	}
	return nil
}

// TotalCurrent is the draw of all ganged motors.
func (s *State) TotalCurrent() units.Quantity {
	return s.Current.Scale(float64(s.Spec.Quantity))
}

// TotalTorque is the combined torque of all ganged motors.
func (s *State) TotalTorque() units.Quantity {
	return s.Torque.Scale(float64(s.Spec.Quantity))
}

// Power is the per-motor mechanical output power.
func (s *State) Power() (units.Quantity, error) {
	t, err := s.Torque.In(newtonM)
	if err != nil {
		return units.Quantity{}, err
	}
	w, err := s.Speed.In(radPerS)
	if err != nil {
		return units.Quantity{}, err
	}
	return units.New(t*w, units.MustUnit("W")), nil
}

// OverLimit reports whether the solved current exceeds CurrentLimit. A
// zero limit means unlimited.
func (s *State) OverLimit() (bool, error) {
	if s.CurrentLimit.IsZero() {
		return false, nil
	}
	c, err := units.Compare(s.Current, s.CurrentLimit)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}
