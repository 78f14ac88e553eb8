package flywheel

import (
	"math"
	"testing"

	"github.com/alexiusacademia/mechcalc/internal/motor"
	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cim(t *testing.T) motor.Spec {
	t.Helper()
	for _, s := range motor.Builtin() {
		if s.Name == "CIM" {
			return s
		}
	}
	t.Fatal("CIM missing")
	return motor.Spec{}
}

const cimFree = 5330 * 2 * math.Pi / 60

func TestMomentOfInertia(t *testing.T) {
	solid, err := MomentOfInertia(Solid, units.MustNew(2, "kg"), units.MustNew(0.1, "m"))
	require.NoError(t, err)
	assert.InDelta(t, 0.01, solid.Scalar(), 1e-15)
	assert.Equal(t, "kg*m^2", solid.Unit().String())

	ring, err := MomentOfInertia(Ring, units.MustNew(2, "kg"), units.MustNew(0.1, "m"))
	require.NoError(t, err)
	assert.InDelta(t, 0.02, ring.Scalar(), 1e-15)

	imperial, err := MomentOfInertia(Solid, units.MustNew(1, "lb"), units.MustNew(2, "in"))
	require.NoError(t, err)
	assert.InEpsilon(t, 0.5*0.45359237*0.0508*0.0508, imperial.Scalar(), 1e-12)

	_, err = MomentOfInertia(Solid, units.MustNew(1, "in"), units.MustNew(2, "in"))
	assert.ErrorIs(t, err, units.ErrIncompatibleUnits)
}

func TestEnergy(t *testing.T) {
	moi := units.MustNew(0.01, "kg*m^2")

	e, err := Energy(moi, units.MustNew(100, "rad/s"))
	require.NoError(t, err)
	assert.Equal(t, "J", e.Unit().String())
	assert.InDelta(t, 50, e.Scalar(), 1e-12)

	e, err = Energy(moi, units.MustNew(1000, "rpm"))
	require.NoError(t, err)
	w := 1000 * 2 * math.Pi / 60
	assert.InEpsilon(t, 0.5*0.01*w*w, e.Scalar(), 1e-12)

	_, err = Energy(moi, units.MustNew(3, "m/s"))
	assert.ErrorIs(t, err, units.ErrIncompatibleUnits)
}

func TestSpeedAfterShot(t *testing.T) {
	moi := units.MustNew(0.01, "kg*m^2")
	r := units.MustNew(0.1, "m")
	speed := units.MustNew(3000, "rpm")

	after, err := SpeedAfterShot(moi, r, speed, units.MustNew(0.2, "kg"))
	require.NoError(t, err)
	assert.Equal(t, "rpm", after.Unit().String())
	assert.InEpsilon(t, 3000*math.Sqrt(0.01/0.0105), after.Scalar(), 1e-12)

	same, err := SpeedAfterShot(moi, r, speed, units.MustNew(0, "kg"))
	require.NoError(t, err)
	assert.InDelta(t, 3000, same.Scalar(), 1e-12)
}

func TestWindupTime(t *testing.T) {
	moi := units.MustNew(0.01, "kg*m^2")
	tau := 0.01 * cimFree / 2.41

	half, err := WindupTime(cim(t), 1, moi, units.New(cimFree/2, units.MustUnit("rad/s")))
	require.NoError(t, err)
	assert.Equal(t, "s", half.Unit().String())
	assert.InEpsilon(t, tau*math.Ln2, half.Scalar(), 1e-9)

	// Gearing 2:1 halves the free speed and doubles the torque.
	geared, err := WindupTime(cim(t), 2, moi, units.New(cimFree/4, units.MustUnit("rad/s")))
	require.NoError(t, err)
	assert.InEpsilon(t, tau/4*math.Ln2, geared.Scalar(), 1e-9)

	// Two motors halve the time constant.
	ganged, err := WindupTime(cim(t).WithQuantity(2), 1, moi, units.New(cimFree/2, units.MustUnit("rad/s")))
	require.NoError(t, err)
	assert.InEpsilon(t, half.Scalar()/2, ganged.Scalar(), 1e-9)
}

func TestWindupTimeUnreachable(t *testing.T) {
	moi := units.MustNew(0.01, "kg*m^2")
	_, err := WindupTime(cim(t), 1, moi, units.MustNew(5330, "rpm"))
	assert.ErrorIs(t, err, ErrUnreachableSpeed)

	_, err = WindupTime(cim(t), 2, moi, units.MustNew(3000, "rpm"))
	assert.ErrorIs(t, err, ErrUnreachableSpeed)
}

func TestWindupTimeBadRatio(t *testing.T) {
	_, err := WindupTime(cim(t), 0, units.MustNew(0.01, "kg*m^2"), units.MustNew(1000, "rpm"))
	assert.ErrorIs(t, err, ErrInvalidFlywheel)
}

func TestParseShape(t *testing.T) {
	s, err := ParseShape("ring")
	require.NoError(t, err)
	assert.Equal(t, Ring, s)
	assert.Equal(t, "ring", s.String())

	s, err = ParseShape("solid")
	require.NoError(t, err)
	assert.Equal(t, Solid, s)

	_, err = ParseShape("cone")
	assert.ErrorIs(t, err, ErrInvalidFlywheel)
	assert.Equal(t, "Shape(7)", Shape(7).String())
}
