package units

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddKeepsLeftUnit(t *testing.T) {
	a := MustNew(3, "lbf")
	b := MustNew(2, "lbf")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, 5.0, sum.Scalar())
	assert.True(t, sum.Unit().Equal(a.Unit()))
}

func TestAddConvertsRightOperand(t *testing.T) {
	a := MustNew(1, "ft")
	b := MustNew(6, "in")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, sum.Scalar(), 1e-12)
	assert.Equal(t, "ft", sum.Unit().String())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, diff.Scalar(), 1e-12)
}

func TestAddIncompatible(t *testing.T) {
	_, err := MustNew(1, "lbf").Add(MustNew(1, "in"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatibleUnits))

	var iue *IncompatibleUnitsError
	require.True(t, errors.As(err, &iue))
	assert.Equal(t, "add", iue.Op)

	_, err = MustNew(1, "psi").Sub(MustNew(1, "N"))
	assert.ErrorIs(t, err, ErrIncompatibleUnits)
}

func TestConversionRoundTrip(t *testing.T) {
	cases := []struct {
		q    Quantity
		unit string
	}{
		{MustNew(10, "N*m"), "lbf*ft"},
		{MustNew(10, "lbf*in"), "N*m"},
		{MustNew(120, "psi"), "kPa"},
		{MustNew(5330, "rpm"), "rad/s"},
		{MustNew(0.25, "in"), "mm"},
		{MustNew(1.2, "cfm"), "ft^3/s"},
		{MustNew(14.5, "deg"), "rad"},
		{MustNew(3.7, "lb*in^2"), "kg*m^2"},
	}
	for _, tc := range cases {
		t.Run(tc.q.String()+"->"+tc.unit, func(t *testing.T) {
			there, err := tc.q.To(MustUnit(tc.unit))
			require.NoError(t, err)
			back, err := there.To(tc.q.Unit())
			require.NoError(t, err)
			assert.InEpsilon(t, tc.q.Scalar(), back.Scalar(), 1e-9)
		})
	}
}

func TestKnownConversions(t *testing.T) {
	nm, err := MustNew(1, "lbf*ft").In(MustUnit("N*m"))
	require.NoError(t, err)
	assert.InDelta(t, 1.3558179483314004, nm, 1e-12)

	psi, err := MustNew(1, "atm").In(MustUnit("psi"))
	require.NoError(t, err)
	assert.InDelta(t, 14.6959, psi, 1e-4)

	rads, err := MustNew(60, "rpm").In(MustUnit("rad/s"))
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Pi, rads, 1e-12)
}

func TestConvertIncompatible(t *testing.T) {
	_, err := MustNew(1, "lbf").To(MustUnit("in"))
	assert.ErrorIs(t, err, ErrIncompatibleUnits)
}

func TestMulComposesTorque(t *testing.T) {
	torque := MustNew(4, "N").Mul(MustNew(0.5, "m"))
	assert.Equal(t, 2.0, torque.Scalar())
	assert.Equal(t, "N*m", torque.Unit().String())
	assert.True(t, torque.Unit().Compatible(MustUnit("lbf*in")))
	assert.Equal(t, dEnergy, torque.Unit().Dimension())
}

func TestDivSameUnitIsDimensionless(t *testing.T) {
	r := MustNew(9, "lbf").Div(MustNew(3, "lbf"))
	assert.Equal(t, 3.0, r.Scalar())
	assert.True(t, r.Unit().IsDimensionless())
	assert.True(t, r.Unit().Equal(Dimensionless))
	assert.Equal(t, "", r.Unit().String())
}

func TestDivCancelsLikeTerms(t *testing.T) {
	force := MustNew(10, "lbf*in").Div(MustNew(0.3, "in"))
	assert.Equal(t, "lbf", force.Unit().String())
	assert.InDelta(t, 33.3333, force.Scalar(), 1e-4)
}

func TestDivByZeroFollowsIEEE(t *testing.T) {
	q := MustNew(1, "lbf").Div(MustNew(0, "in"))
	assert.True(t, math.IsInf(q.Scalar(), 1))

	q = MustNew(0, "lbf").Div(MustNew(0, "in"))
	assert.True(t, math.IsNaN(q.Scalar()))
}

func TestInverse(t *testing.T) {
	dp := MustNew(20, "1/in")
	inv := dp.Inverse()
	assert.InDelta(t, 0.05, inv.Scalar(), 1e-15)
	assert.Equal(t, "in", inv.Unit().String())

	assert.Equal(t, "1/s", MustNew(2, "s").Inverse().Unit().String())
}

func TestPow(t *testing.T) {
	v := MustNew(2, "ft").Pow(3)
	assert.Equal(t, 8.0, v.Scalar())
	assert.Equal(t, "ft^3", v.Unit().String())
	assert.True(t, v.Unit().Compatible(MustUnit("L")))
}

func TestMaxMin(t *testing.T) {
	a := MustNew(1, "lbf")
	b := MustNew(10, "N")

	hi, err := Max(a, b)
	require.NoError(t, err)
	assert.Equal(t, b, hi)

	lo, err := Min(a, b)
	require.NoError(t, err)
	assert.Equal(t, a, lo)

	_, err = Max(a, MustNew(1, "in"))
	assert.ErrorIs(t, err, ErrIncompatibleUnits)
}

func TestMaxAbs(t *testing.T) {
	small := MustNew(-1, "lbf")
	large := MustNew(-10, "N")

	got, err := MaxAbs(small, large)
	require.NoError(t, err)
	assert.Equal(t, large, got)

	got, err = MaxAbs(MustNew(3, "lbf"), MustNew(-3, "lbf"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Scalar())

	assert.Equal(t, MustNew(2.5, "N*m"), MustNew(-2.5, "N*m").Abs())

	_, err = MaxAbs(small, MustNew(1, "in"))
	assert.ErrorIs(t, err, ErrIncompatibleUnits)
}

func TestCompare(t *testing.T) {
	c, err := Compare(MustNew(11, "in"), MustNew(1, "ft"))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = Compare(MustNew(2, "lbf"), MustNew(2, "lbf"))
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	c, err = Compare(MustNew(1, "psi"), MustNew(1, "kPa"))
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}

func TestScaleKeepsUnit(t *testing.T) {
	q := MustNew(3, "ft^3/s").Scale(2)
	assert.Equal(t, 6.0, q.Scalar())
	assert.Equal(t, "ft^3/s", q.Unit().String())
}

func TestString(t *testing.T) {
	assert.Equal(t, "10 lbf*in", MustNew(10, "lbf in").String())
	assert.Equal(t, "1.5", Number(1.5).String())
	assert.Equal(t, "33.333 lbf", MustNew(100.0/3, "lbf").Fixed(3))
}
