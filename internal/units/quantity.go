package units

import (
	"fmt"
	"math"
	"strconv"
)

// Quantity is a scalar tagged with a unit. It is an immutable value;
// every operation returns a new Quantity.
type Quantity struct {
	scalar float64
	unit   Unit
}

// New returns scalar in unit u.
func New(scalar float64, u Unit) Quantity {
	return Quantity{scalar: scalar, unit: u}
}

// MustNew parses unit and panics if it is unknown. It is meant for
// static tables and tests.
func MustNew(scalar float64, unit string) Quantity {
	return New(scalar, MustUnit(unit))
}

// Number returns a dimensionless quantity.
func Number(f float64) Quantity {
	return Quantity{scalar: f}
}

// Scalar returns the numeric part in the quantity's own unit.
func (q Quantity) Scalar() float64 { return q.scalar }

// Unit returns the unit of q.
func (q Quantity) Unit() Unit { return q.unit }

// IsZero reports whether the scalar is exactly zero.
func (q Quantity) IsZero() bool { return q.scalar == 0 }

// To converts q to u.
func (q Quantity) To(u Unit) (Quantity, error) {
	if !q.unit.Compatible(u) {
		return Quantity{}, &IncompatibleUnitsError{Op: "convert", From: q.unit, To: u}
	}
	return Quantity{scalar: q.scalar * q.unit.factor() / u.factor(), unit: u}, nil
}

// In returns the scalar of q expressed in u.
func (q Quantity) In(u Unit) (float64, error) {
	c, err := q.To(u)
	if err != nil {
		return 0, err
	}
	return c.scalar, nil
}

// Add returns q+o in q's unit.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if !q.unit.Compatible(o.unit) {
		return Quantity{}, &IncompatibleUnitsError{Op: "add", From: q.unit, To: o.unit}
	}
	c, _ := o.To(q.unit)
	return Quantity{scalar: q.scalar + c.scalar, unit: q.unit}, nil
}

// Sub returns q-o in q's unit.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if !q.unit.Compatible(o.unit) {
		return Quantity{}, &IncompatibleUnitsError{Op: "subtract", From: q.unit, To: o.unit}
	}
	c, _ := o.To(q.unit)
	return Quantity{scalar: q.scalar - c.scalar, unit: q.unit}, nil
}

// Mul returns q*o with the product unit.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{scalar: q.scalar * o.scalar, unit: q.unit.Mul(o.unit)}
}

// Div returns q/o with the quotient unit. A zero divisor yields Inf or
// NaN.
func (q Quantity) Div(o Quantity) Quantity {
	return Quantity{scalar: q.scalar / o.scalar, unit: q.unit.Div(o.unit)}
}

// Scale multiplies the scalar by a plain number.
func (q Quantity) Scale(f float64) Quantity {
	return Quantity{scalar: q.scalar * f, unit: q.unit}
}

// Abs returns q with a non-negative scalar.
func (q Quantity) Abs() Quantity {
	return Quantity{scalar: math.Abs(q.scalar), unit: q.unit}
}

// Inverse returns 1/q.
func (q Quantity) Inverse() Quantity {
	return Quantity{scalar: 1 / q.scalar, unit: q.unit.Inverse()}
}

// Pow returns q raised to an integer power.
func (q Quantity) Pow(n int) Quantity {
	return Quantity{scalar: math.Pow(q.scalar, float64(n)), unit: q.unit.Pow(n)}
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater
// than b.
func Compare(a, b Quantity) (int, error) {
	if !a.unit.Compatible(b.unit) {
		return 0, &IncompatibleUnitsError{Op: "compare", From: a.unit, To: b.unit}
	}
	c, _ := b.To(a.unit)
	switch {
	case a.scalar < c.scalar:
		return -1, nil
	case a.scalar > c.scalar:
		return 1, nil
	}
	return 0, nil
}

// Max returns the larger of a and b, unchanged. Ties return a.
func Max(a, b Quantity) (Quantity, error) {
	c, err := Compare(a, b)
	if err != nil {
		return Quantity{}, err
	}
	if c < 0 {
		return b, nil
	}
	return a, nil
}

// MaxAbs returns whichever of a and b has the larger magnitude, unchanged
// and with its sign. Ties return a.
func MaxAbs(a, b Quantity) (Quantity, error) {
	c, err := Compare(a.Abs(), b.Abs())
	if err != nil {
		return Quantity{}, err
	}
	if c < 0 {
		return b, nil
	}
	return a, nil
}

// Min returns the smaller of a and b, unchanged. Ties return a.
func Min(a, b Quantity) (Quantity, error) {
	c, err := Compare(a, b)
	if err != nil {
		return Quantity{}, err
	}
	if c > 0 {
		return b, nil
	}
	return a, nil
}

// String formats q as "<scalar> <unit>".
func (q Quantity) String() string {
	s := strconv.FormatFloat(q.scalar, 'g', -1, 64)
	if u := q.unit.String(); u != "" {
		s += " " + u
	}
	return s
}

// Fixed renders q with a fixed number of decimals.
func (q Quantity) Fixed(precision int) string {
	s := strconv.FormatFloat(q.scalar, 'f', precision, 64)
	if u := q.unit.String(); u != "" {
		s += " " + u
	}
	return s
}

// GoString makes %#v output readable in test failures.
func (q Quantity) GoString() string {
	return fmt.Sprintf("units.MustNew(%v, %q)", q.scalar, q.unit.String())
}
