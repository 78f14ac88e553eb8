package pneumatics

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/mechcalc/internal/units"
)

// ErrInvalidFill is returned for fill parameters that cannot be
// integrated.
var ErrInvalidFill = errors.New("pneumatics: invalid fill parameters")

// Fill defaults.
var (
	DefaultFillStep     = units.MustNew(0.5, "s")
	DefaultFillDuration = units.MustNew(30, "min")
)

// FillParams describes a compressor charging a closed tank. Pressures are
// gauge. A zero StartPressure is an empty tank; zero Step, MaxDuration
// and Atmosphere take the defaults.
type FillParams struct {
	TankVolume     units.Quantity
	StartPressure  units.Quantity
	TargetPressure units.Quantity
	Step           units.Quantity
	MaxDuration    units.Quantity
	Atmosphere     units.Quantity
}

// FillSample is the tank state at one instant.
type FillSample struct {
	Time     units.Quantity
	Pressure units.Quantity
	Flow     units.Quantity
}

// FillResult is the integrated pressure history. Reached is false when
// the compressor stalled or MaxDuration ran out before TargetPressure.
type FillResult struct {
	Samples  []FillSample
	Duration units.Quantity
	Reached  bool
}

type fillSI struct {
	volume, start, target, step, limit, atm float64
}

func (p FillParams) resolve() (fillSI, error) {
	orDefault := func(q, def units.Quantity) units.Quantity {
		if q.IsZero() {
			return def
		}
		return q
	}
	var (
		f   fillSI
		err error
	)
	convert := func(dst *float64, q units.Quantity, u units.Unit, what string) {
		if err != nil {
			return
		}
		if *dst, err = q.In(u); err != nil {
			err = fmt.Errorf("pneumatics: %s: %w", what, err)
		}
	}
	if p.TankVolume.IsZero() {
		return fillSI{}, fmt.Errorf("%w: no tank volume", ErrInvalidFill)
	}
	convert(&f.volume, p.TankVolume, cubicFt, "tank volume")
	convert(&f.start, orDefault(p.StartPressure, units.New(0, psi)), psi, "start pressure")
	convert(&f.target, p.TargetPressure, psi, "target pressure")
	convert(&f.step, orDefault(p.Step, DefaultFillStep), seconds, "step")
	convert(&f.limit, orDefault(p.MaxDuration, DefaultFillDuration), seconds, "max duration")
	convert(&f.atm, orDefault(p.Atmosphere, atmospheric), psi, "atmosphere")
	if err != nil {
		return fillSI{}, err
	}

	switch {
	case f.volume <= 0:
		return fillSI{}, fmt.Errorf("%w: tank volume %s", ErrInvalidFill, p.TankVolume)
	case f.step <= 0:
		return fillSI{}, fmt.Errorf("%w: step %s", ErrInvalidFill, p.Step)
	case f.target < f.start:
		return fillSI{}, fmt.Errorf("%w: target %s below start %s", ErrInvalidFill, p.TargetPressure, p.StartPressure)
	}
	return f, nil
}

// SimulateFill integrates isothermal tank pressure with fixed Euler
// steps:
//
//	dP/dt = Q(P) * Patm / V
//
// where Q is the compressor's free-air flow. The last step is shortened
// so the final sample lands on the target.
func SimulateFill(c Compressor, p FillParams) (FillResult, error) {
	f, err := p.resolve()
	if err != nil {
		return FillResult{}, err
	}

	flowAt := func(pressure float64) (float64, error) {
		q, err := c.CFM(units.New(pressure, psi))
		if err != nil {
			return 0, err
		}
		return q.Scalar(), nil
	}
	sample := func(t, pressure, flow float64) FillSample {
		return FillSample{
			Time:     units.New(t, seconds),
			Pressure: units.New(pressure, psi),
			Flow:     units.New(flow, cubicFtPerS),
		}
	}

	var (
		res      FillResult
		t        float64
		pressure = f.start
	)
	for {
		flow, err := flowAt(pressure)
		if err != nil {
			return FillResult{}, err
		}
		res.Samples = append(res.Samples, sample(t, pressure, flow))
		if pressure >= f.target {
			res.Reached = true
			break
		}
		rate := flow * f.atm / f.volume // psi/s
		if rate <= 0 || t >= f.limit {
			break
		}

		dt := f.step
		if next := pressure + rate*dt; next >= f.target {
			dt = (f.target - pressure) / rate
			pressure = f.target
		} else {
			pressure = next
		}
		t += dt
	}
	res.Duration = units.New(t, seconds)
	return res, nil
}
