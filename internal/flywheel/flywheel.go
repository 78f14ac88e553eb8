// Package flywheel sizes shooter flywheels: stored energy, the speed left
// after launching a game piece and the time a motor needs to spin the
// wheel back up.
package flywheel

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/mechcalc/internal/motor"
	"github.com/alexiusacademia/mechcalc/internal/units"
)

var (
	kgM2    = units.MustUnit("kg*m^2")
	meters  = units.MustUnit("m")
	kg      = units.MustUnit("kg")
	radPerS = units.MustUnit("rad/s")
	joules  = units.MustUnit("J")
	newtonM = units.MustUnit("N*m")
	seconds = units.MustUnit("s")
	radSq   = units.MustNew(1, "rad^2")
)

var (
	// ErrInvalidFlywheel is returned for non-positive geometry or ratios.
	ErrInvalidFlywheel = errors.New("flywheel: invalid parameters")
	// ErrUnreachableSpeed is returned when a target speed is at or above
	// the motor's free speed through the gearing.
	ErrUnreachableSpeed = errors.New("flywheel: speed unreachable")
)

// Shape selects the mass distribution used for the moment of inertia.
type Shape int

const (
	// Solid is a uniform disc or cylinder, I = m r^2 / 2.
	Solid Shape = iota
	// Ring puts all mass on the rim, I = m r^2.
	Ring
)

func (s Shape) String() string {
	switch s {
	case Solid:
		return "solid"
	case Ring:
		return "ring"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape accepts "solid" or "ring".
func ParseShape(s string) (Shape, error) {
	switch s {
	case "solid", "disc", "cylinder":
		return Solid, nil
	case "ring", "hoop":
		return Ring, nil
	}
	return 0, fmt.Errorf("%w: unknown shape %q", ErrInvalidFlywheel, s)
}

// MomentOfInertia returns the wheel's rotational inertia in kg*m^2.
func MomentOfInertia(shape Shape, mass, radius units.Quantity) (units.Quantity, error) {
	m, err := mass.In(kg)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("flywheel mass: %w", err)
	}
	r, err := radius.In(meters)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("flywheel radius: %w", err)
	}
	k := 0.5
	if shape == Ring {
		k = 1
	}
	return units.New(k*m*r*r, kgM2), nil
}

// Energy is the kinetic energy I*w^2/2 in joules.
func Energy(moi, speed units.Quantity) (units.Quantity, error) {
	e := moi.Mul(speed.Pow(2)).Scale(0.5).Div(radSq)
	out, err := e.To(joules)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("flywheel energy: %w", err)
	}
	return out, nil
}

// SpeedAfterShot conserves energy across a shot where the projectile
// leaves at half the wheel's surface speed:
//
//	w' = w * sqrt(I / (I + m r^2 / 4))
//
// The result is in speed's unit.
func SpeedAfterShot(moi, radius, speed, projectileMass units.Quantity) (units.Quantity, error) {
	i, err := moi.In(kgM2)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("flywheel inertia: %w", err)
	}
	r, err := radius.In(meters)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("flywheel radius: %w", err)
	}
	m, err := projectileMass.In(kg)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("projectile mass: %w", err)
	}
	return speed.Scale(math.Sqrt(i / (i + m*r*r/4))), nil
}

// drive is a motor gearbox reduced to its output free speed and stall
// torque, in rad/s and N*m.
type drive struct {
	freeSpeed   float64
	stallTorque float64
}

func driveOf(spec motor.Spec, ratio float64) (drive, error) {
	if ratio <= 0 {
		return drive{}, fmt.Errorf("%w: gear ratio %g", ErrInvalidFlywheel, ratio)
	}
	free, err := spec.FreeSpeed.In(radPerS)
	if err != nil {
		return drive{}, fmt.Errorf("motor %q free speed: %w", spec.Name, err)
	}
	stall, err := spec.StallTorque.In(newtonM)
	if err != nil {
		return drive{}, fmt.Errorf("motor %q stall torque: %w", spec.Name, err)
	}
	n := spec.Quantity
	if n <= 0 {
		n = 1
	}
	return drive{freeSpeed: free / ratio, stallTorque: stall * ratio * float64(n)}, nil
}

// timeBetween is the spin-up time from w0 to w1 under a linear
// torque-speed curve, t = tau * ln((wf - w0) / (wf - w1)) with
// tau = I wf / Tstall.
func (d drive) timeBetween(moi, w0, w1 float64) (float64, error) {
	if w1 >= d.freeSpeed {
		return 0, fmt.Errorf("%w: %.1f rad/s at or above free speed %.1f rad/s", ErrUnreachableSpeed, w1, d.freeSpeed)
	}
	tau := moi * d.freeSpeed / d.stallTorque
	return tau * math.Log((d.freeSpeed-w0)/(d.freeSpeed-w1)), nil
}

// WindupTime is the time for spec, geared down by ratio (motor turns per
// wheel turn), to spin a wheel of inertia moi from rest to speed.
func WindupTime(spec motor.Spec, ratio float64, moi, speed units.Quantity) (units.Quantity, error) {
	return RecoveryTime(spec, ratio, moi, units.New(0, radPerS), speed)
}

// RecoveryTime is the time to spin the wheel back up from one speed to
// another, as after a shot.
func RecoveryTime(spec motor.Spec, ratio float64, moi, from, to units.Quantity) (units.Quantity, error) {
	d, err := driveOf(spec, ratio)
	if err != nil {
		return units.Quantity{}, err
	}
	i, err := moi.In(kgM2)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("flywheel inertia: %w", err)
	}
	w0, err := from.In(radPerS)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("flywheel speed: %w", err)
	}
	w1, err := to.In(radPerS)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("flywheel speed: %w", err)
	}
	t, err := d.timeBetween(i, w0, w1)
	if err != nil {
		return units.Quantity{}, err
	}
	return units.New(t, seconds), nil
}
