package units

import (
	"math"
	"strconv"
	"strings"
)

type term struct {
	symbol string
	exp    int
}

// Unit is a product of registered symbols raised to integer powers, such
// as lbf*in or ft^3/s. Like symbols combine, so in/in is dimensionless.
// The zero Unit is dimensionless.
type Unit struct {
	terms []term
}

// Dimensionless is the unit of a plain number.
var Dimensionless = Unit{}

func (u Unit) combine(o Unit, sign int) Unit {
	terms := make([]term, len(u.terms), len(u.terms)+len(o.terms))
	copy(terms, u.terms)
	for _, ot := range o.terms {
		found := false
		for i := range terms {
			if terms[i].symbol == ot.symbol {
				terms[i].exp += sign * ot.exp
				found = true
				break
			}
		}
		if !found {
			terms = append(terms, term{ot.symbol, sign * ot.exp})
		}
	}
	out := terms[:0]
	for _, t := range terms {
		if t.exp != 0 {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return Dimensionless
	}
	return Unit{terms: out}
}

// Mul returns the product unit u*o.
func (u Unit) Mul(o Unit) Unit { return u.combine(o, 1) }

// Div returns the quotient unit u/o.
func (u Unit) Div(o Unit) Unit { return u.combine(o, -1) }

// Pow returns u raised to n.
func (u Unit) Pow(n int) Unit {
	if n == 0 {
		return Dimensionless
	}
	terms := make([]term, len(u.terms))
	for i, t := range u.terms {
		terms[i] = term{t.symbol, t.exp * n}
	}
	return Unit{terms: terms}
}

// Inverse returns 1/u.
func (u Unit) Inverse() Unit { return u.Pow(-1) }

// Dimension returns the exponent vector of u.
func (u Unit) Dimension() Dimension {
	var d Dimension
	for _, t := range u.terms {
		d = d.add(registry[t.symbol].dim.scale(t.exp))
	}
	return d
}

// factor is the multiplier taking a scalar in u to SI base units.
func (u Unit) factor() float64 {
	f := 1.0
	for _, t := range u.terms {
		f *= math.Pow(registry[t.symbol].factor, float64(t.exp))
	}
	return f
}

// Compatible reports whether u and o measure the same physical dimension.
func (u Unit) Compatible(o Unit) bool {
	return u.Dimension() == o.Dimension()
}

// IsDimensionless reports whether u has no dimension. A unit such as
// lbf/N is dimensionless but still carries a conversion factor.
func (u Unit) IsDimensionless() bool {
	return u.Dimension().IsZero()
}

// Equal reports whether u and o are written with the same terms.
func (u Unit) Equal(o Unit) bool {
	if len(u.terms) != len(o.terms) {
		return false
	}
	for i := range u.terms {
		if u.terms[i] != o.terms[i] {
			return false
		}
	}
	return true
}

// String renders u with positive exponents first and everything after a
// single slash in the denominator: "lbf*in", "ft^3/s", "1/in".
// ParseUnit reads the same form back.
func (u Unit) String() string {
	var num, den []string
	for _, t := range u.terms {
		switch {
		case t.exp == 1:
			num = append(num, t.symbol)
		case t.exp > 1:
			num = append(num, t.symbol+"^"+strconv.Itoa(t.exp))
		case t.exp == -1:
			den = append(den, t.symbol)
		default:
			den = append(den, t.symbol+"^"+strconv.Itoa(-t.exp))
		}
	}
	s := strings.Join(num, "*")
	if len(den) > 0 {
		if s == "" {
			s = "1"
		}
		s += "/" + strings.Join(den, "*")
	}
	return s
}
