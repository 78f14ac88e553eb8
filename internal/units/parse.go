package units

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseUnit reads a unit expression. Terms are separated by spaces, '*'
// or '·' and may carry an integer exponent ("ft^3"). Everything after the
// first '/' is in the denominator, so "kg/s*A" is kg/(s*A). A leading "1"
// allows pure reciprocals such as "1/in". The empty string is
// dimensionless.
func ParseUnit(s string) (Unit, error) {
	num, den, _ := strings.Cut(strings.TrimSpace(s), "/")
	u, err := parseTerms(num, 1)
	if err != nil {
		return Unit{}, err
	}
	d, err := parseTerms(den, -1)
	if err != nil {
		return Unit{}, err
	}
	return u.Mul(d), nil
}

// MustUnit is like ParseUnit but panics on error.
func MustUnit(s string) Unit {
	u, err := ParseUnit(s)
	if err != nil {
		panic(err)
	}
	return u
}

func parseTerms(s string, sign int) (Unit, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '*' || r == '·' || r == '\t'
	})
	u := Dimensionless
	for _, f := range fields {
		if f == "1" {
			continue
		}
		sym, expText, hasExp := strings.Cut(f, "^")
		exp := 1
		if hasExp {
			n, err := strconv.Atoi(expText)
			if err != nil {
				return Unit{}, fmt.Errorf("units: bad exponent in %q: %w", f, err)
			}
			exp = n
		}
		if _, ok := registry[sym]; !ok {
			return Unit{}, &UnknownUnitError{Symbol: sym}
		}
		u = u.Mul(Unit{terms: []term{{sym, sign * exp}}})
	}
	return u, nil
}

// Parse reads a quantity such as "10 lbf*in", "12V" or "0.25 in". A bare
// number is dimensionless.
func Parse(s string) (Quantity, error) {
	return ParseDefault(s, Dimensionless)
}

// ParseDefault is like Parse but gives a bare number the unit def.
func ParseDefault(s string, def Unit) (Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Quantity{}, fmt.Errorf("units: empty quantity")
	}
	for i := len(s); i > 0; i-- {
		f, err := strconv.ParseFloat(s[:i], 64)
		if err != nil {
			continue
		}
		rest := strings.TrimSpace(s[i:])
		if rest == "" {
			return New(f, def), nil
		}
		u, err := ParseUnit(rest)
		if err != nil {
			return Quantity{}, err
		}
		return New(f, u), nil
	}
	return Quantity{}, fmt.Errorf("units: no number in %q", s)
}
