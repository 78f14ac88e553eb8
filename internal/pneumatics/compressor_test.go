package pneumatics

import (
	"testing"

	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viair90C(t *testing.T) Compressor {
	t.Helper()
	for _, c := range Builtin() {
		if c.Name == "VIAIR 90C" {
			return c
		}
	}
	t.Fatal("VIAIR 90C missing")
	return Compressor{}
}

func TestBuiltinCompressors(t *testing.T) {
	names := make([]string, 0)
	for _, c := range Builtin() {
		require.NoError(t, c.Validate())
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"VIAIR 90C", "VIAIR 98C", "VIAIR 100C", "Thomas 215", "AndyMark 1.1 Pump"}, names)
}

func TestBuiltinIsDeepCopy(t *testing.T) {
	a := Builtin()
	a[0].PolynomialTerms[0] = 99
	assert.NotEqual(t, 99.0, Builtin()[0].PolynomialTerms[0])
}

func TestCFMAtZeroIsConstantTerm(t *testing.T) {
	q, err := viair90C(t).CFM(units.MustNew(0, "psi"))
	require.NoError(t, err)
	assert.Equal(t, "ft^3/s", q.Unit().String())
	assert.InDelta(t, 1.0287758990009150/60, q.Scalar(), 1e-15)

	cfm, err := q.In(units.MustUnit("cfm"))
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0287758990009150, cfm, 1e-12)
}

func TestCFMEvaluatesPolynomial(t *testing.T) {
	c := Compressor{Name: "quadratic", PolynomialTerms: []float64{1, 2, 3}}
	q, err := c.CFM(units.MustNew(2, "psi"))
	require.NoError(t, err)
	assert.InDelta(t, (1+2*2+3*4)/60.0, q.Scalar(), 1e-15)
}

func TestCFMDeterministic(t *testing.T) {
	c := viair90C(t)
	p := units.MustNew(87.3, "psi")
	a, err := c.CFM(p)
	require.NoError(t, err)
	b, err := c.CFM(p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCFMConvertsPressure(t *testing.T) {
	c := viair90C(t)
	inPsi, err := c.CFM(units.MustNew(60, "psi"))
	require.NoError(t, err)

	kpa, err := units.MustNew(60, "psi").To(units.MustUnit("kPa"))
	require.NoError(t, err)
	inKPa, err := c.CFM(kpa)
	require.NoError(t, err)

	assert.InEpsilon(t, inPsi.Scalar(), inKPa.Scalar(), 1e-9)
}

func TestCFMDropsWithPressure(t *testing.T) {
	c := viair90C(t)
	low, err := c.CFM(units.MustNew(10, "psi"))
	require.NoError(t, err)
	high, err := c.CFM(units.MustNew(110, "psi"))
	require.NoError(t, err)
	assert.Greater(t, low.Scalar(), high.Scalar())
}

func TestCFMRejectsNonPressure(t *testing.T) {
	_, err := viair90C(t).CFM(units.MustNew(60, "in"))
	assert.ErrorIs(t, err, units.ErrIncompatibleUnits)
}
