package pneumatics

import (
	"fmt"

	"github.com/alexiusacademia/mechcalc/internal/units"
)

var (
	psi         = units.MustUnit("psi")
	cubicFtPerS = units.MustUnit("ft^3/s")
	cubicFt     = units.MustUnit("ft^3")
	seconds     = units.MustUnit("s")
	atmospheric = units.MustNew(1, "atm")
)

// Compressor is a free-air flow curve fitted as a polynomial in gauge
// pressure. PolynomialTerms[i] is the coefficient of psi^i and the
// polynomial yields cubic feet per minute.
type Compressor struct {
	Name            string
	PolynomialTerms []float64
}

// Clone returns c with its own copy of the polynomial terms.
func (c Compressor) Clone() Compressor {
	c.PolynomialTerms = append([]float64(nil), c.PolynomialTerms...)
	return c
}

// CFM evaluates the flow curve at pressure and returns it in ft^3/s.
// Pressures outside the fitted range are not guarded.
func (c Compressor) CFM(pressure units.Quantity) (units.Quantity, error) {
	p, err := pressure.In(psi)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("compressor %q: %w", c.Name, err)
	}
	var perMinute float64
	for i := len(c.PolynomialTerms) - 1; i >= 0; i-- {
		perMinute = perMinute*p + c.PolynomialTerms[i]
	}
	return units.New(perMinute/60, cubicFtPerS), nil
}

// Validate checks that the compressor is usable.
func (c Compressor) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("compressor: missing name")
	}
	if len(c.PolynomialTerms) == 0 {
		return fmt.Errorf("compressor %q: no polynomial terms", c.Name)
	}
	return nil
}
