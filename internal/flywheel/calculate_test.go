package flywheel

import (
	"testing"

	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shooter(t *testing.T) Params {
	return Params{
		Shape:          Solid,
		Mass:           units.MustNew(2, "lb"),
		Radius:         units.MustNew(2, "in"),
		Speed:          units.MustNew(4000, "rpm"),
		ProjectileMass: units.MustNew(0.3, "lb"),
		Motor:          cim(t).WithQuantity(2),
		Ratio:          1,
	}
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(shooter(t))
	require.NoError(t, err)

	assert.Less(t, res.SpeedAfterShot.Scalar(), 4000.0)
	assert.Greater(t, res.EnergyDelivered.Scalar(), 0.0)
	assert.Less(t, res.EnergyDelivered.Scalar(), res.Energy.Scalar())
	assert.Less(t, res.RecoveryTime.Scalar(), res.WindupTime.Scalar())

	// Exit speed is half the post-shot surface speed.
	w, err := res.SpeedAfterShot.In(units.MustUnit("rad/s"))
	require.NoError(t, err)
	wantFtPerS := w * (2.0 / 12) / 2
	assert.Equal(t, "ft/s", res.ExitVelocity.Unit().String())
	assert.InEpsilon(t, wantFtPerS, res.ExitVelocity.Scalar(), 1e-9)

	after, err := Energy(res.MomentOfInertia, res.SpeedAfterShot)
	require.NoError(t, err)
	sum, err := after.Add(res.EnergyDelivered)
	require.NoError(t, err)
	assert.InEpsilon(t, res.Energy.Scalar(), sum.Scalar(), 1e-9)
}

func TestCalculateRejectsEmptyWheel(t *testing.T) {
	p := shooter(t)
	p.Mass = units.MustNew(0, "lb")
	_, err := Calculate(p)
	assert.ErrorIs(t, err, ErrInvalidFlywheel)

	p = shooter(t)
	p.Radius = units.Quantity{}
	_, err = Calculate(p)
	assert.ErrorIs(t, err, ErrInvalidFlywheel)
}

func TestCalculateUnreachableSpeed(t *testing.T) {
	p := shooter(t)
	p.Speed = units.MustNew(6000, "rpm")
	_, err := Calculate(p)
	assert.ErrorIs(t, err, ErrUnreachableSpeed)
}
