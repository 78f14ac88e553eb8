package flywheel

import (
	"fmt"

	"github.com/alexiusacademia/mechcalc/internal/motor"
	"github.com/alexiusacademia/mechcalc/internal/units"
)

// Params describes a shooter wheel, the game piece it launches and the
// motors driving it.
type Params struct {
	Shape          Shape
	Mass           units.Quantity
	Radius         units.Quantity
	Speed          units.Quantity
	ProjectileMass units.Quantity
	Motor          motor.Spec
	Ratio          float64
}

// Result collects every flywheel figure for one configuration.
type Result struct {
	MomentOfInertia units.Quantity
	Energy          units.Quantity
	SpeedAfterShot  units.Quantity
	EnergyDelivered units.Quantity
	ExitVelocity    units.Quantity
	WindupTime      units.Quantity
	RecoveryTime    units.Quantity
}

// Calculate derives the full flywheel report.
func Calculate(p Params) (Result, error) {
	if p.Mass.Scalar() <= 0 || p.Radius.Scalar() <= 0 {
		return Result{}, fmt.Errorf("%w: mass %s, radius %s", ErrInvalidFlywheel, p.Mass, p.Radius)
	}

	var (
		res Result
		err error
	)
	if res.MomentOfInertia, err = MomentOfInertia(p.Shape, p.Mass, p.Radius); err != nil {
		return Result{}, err
	}
	if res.Energy, err = Energy(res.MomentOfInertia, p.Speed); err != nil {
		return Result{}, err
	}
	if res.SpeedAfterShot, err = SpeedAfterShot(res.MomentOfInertia, p.Radius, p.Speed, p.ProjectileMass); err != nil {
		return Result{}, err
	}
	after, err := Energy(res.MomentOfInertia, res.SpeedAfterShot)
	if err != nil {
		return Result{}, err
	}
	if res.EnergyDelivered, err = res.Energy.Sub(after); err != nil {
		return Result{}, err
	}

	// Surface speed w*r/2, with the radian dropped.
	exit := res.SpeedAfterShot.Mul(p.Radius).Scale(0.5).Div(units.MustNew(1, "rad"))
	if res.ExitVelocity, err = exit.To(units.MustUnit("ft/s")); err != nil {
		return Result{}, err
	}

	if res.WindupTime, err = WindupTime(p.Motor, p.Ratio, res.MomentOfInertia, p.Speed); err != nil {
		return Result{}, err
	}
	if res.RecoveryTime, err = RecoveryTime(p.Motor, p.Ratio, res.MomentOfInertia, res.SpeedAfterShot, p.Speed); err != nil {
		return Result{}, err
	}
	return res, nil
}
