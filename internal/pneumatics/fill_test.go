package pneumatics

import (
	"testing"

	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constantFlow delivers 1 cfm at any pressure.
var constantFlow = Compressor{Name: "constant", PolynomialTerms: []float64{1}}

func TestSimulateFillConstantFlow(t *testing.T) {
	res, err := SimulateFill(constantFlow, FillParams{
		TankVolume:     units.MustNew(1, "ft^3"),
		TargetPressure: units.MustNew(60, "psi"),
		Atmosphere:     units.MustNew(14.7, "psi"),
	})
	require.NoError(t, err)
	require.True(t, res.Reached)

	// 1/60 ft^3/s of free air into 1 ft^3 raises the tank 14.7/60 psi/s.
	assert.InEpsilon(t, 60*60/14.7, res.Duration.Scalar(), 1e-9)

	last := res.Samples[len(res.Samples)-1]
	assert.InDelta(t, 60, last.Pressure.Scalar(), 1e-9)
	assert.Equal(t, 0.0, res.Samples[0].Time.Scalar())
	assert.Equal(t, 0.0, res.Samples[0].Pressure.Scalar())

	for i := 1; i < len(res.Samples); i++ {
		assert.Greater(t, res.Samples[i].Pressure.Scalar(), res.Samples[i-1].Pressure.Scalar())
	}
}

func TestSimulateFillLargerTankTakesLonger(t *testing.T) {
	c := viair90C(t)
	fill := func(volume string) float64 {
		res, err := SimulateFill(c, FillParams{
			TankVolume:     units.MustNew(1, volume),
			TargetPressure: units.MustNew(60, "psi"),
		})
		require.NoError(t, err)
		require.True(t, res.Reached)
		return res.Duration.Scalar()
	}
	assert.Greater(t, fill("ft^3"), fill("L"))
}

func TestSimulateFillStalls(t *testing.T) {
	// Flow reaches zero at 10 psi.
	weak := Compressor{Name: "weak", PolynomialTerms: []float64{1, -0.1}}
	res, err := SimulateFill(weak, FillParams{
		TankVolume:     units.MustNew(0.1, "ft^3"),
		TargetPressure: units.MustNew(20, "psi"),
	})
	require.NoError(t, err)
	assert.False(t, res.Reached)

	last := res.Samples[len(res.Samples)-1]
	assert.Less(t, last.Pressure.Scalar(), 10.0+1e-9)
}

func TestSimulateFillRespectsMaxDuration(t *testing.T) {
	res, err := SimulateFill(constantFlow, FillParams{
		TankVolume:     units.MustNew(100, "ft^3"),
		TargetPressure: units.MustNew(120, "psi"),
		Step:           units.MustNew(1, "s"),
		MaxDuration:    units.MustNew(10, "s"),
	})
	require.NoError(t, err)
	assert.False(t, res.Reached)
	assert.InDelta(t, 10, res.Duration.Scalar(), 1e-9)
	assert.Len(t, res.Samples, 11)
}

func TestSimulateFillAlreadyFull(t *testing.T) {
	res, err := SimulateFill(constantFlow, FillParams{
		TankVolume:     units.MustNew(1, "L"),
		StartPressure:  units.MustNew(60, "psi"),
		TargetPressure: units.MustNew(60, "psi"),
	})
	require.NoError(t, err)
	assert.True(t, res.Reached)
	assert.Len(t, res.Samples, 1)
	assert.Equal(t, 0.0, res.Duration.Scalar())
}

func TestSimulateFillInvalid(t *testing.T) {
	cases := map[string]FillParams{
		"no volume":       {TargetPressure: units.MustNew(60, "psi")},
		"negative volume": {TankVolume: units.MustNew(-1, "L"), TargetPressure: units.MustNew(60, "psi")},
		"target below start": {
			TankVolume:     units.MustNew(1, "L"),
			StartPressure:  units.MustNew(80, "psi"),
			TargetPressure: units.MustNew(60, "psi"),
		},
		"negative step": {
			TankVolume:     units.MustNew(1, "L"),
			TargetPressure: units.MustNew(60, "psi"),
			Step:           units.MustNew(-1, "s"),
		},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := SimulateFill(constantFlow, p)
			assert.ErrorIs(t, err, ErrInvalidFill)
		})
	}
}

func TestSimulateFillUnitErrors(t *testing.T) {
	_, err := SimulateFill(constantFlow, FillParams{
		TankVolume:     units.MustNew(1, "in"),
		TargetPressure: units.MustNew(60, "psi"),
	})
	assert.ErrorIs(t, err, units.ErrIncompatibleUnits)
}
