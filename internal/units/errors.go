package units

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleUnits is matched by every IncompatibleUnitsError.
	ErrIncompatibleUnits = errors.New("units: incompatible units")

	// ErrUnknownUnit is matched by every UnknownUnitError.
	ErrUnknownUnit = errors.New("units: unknown unit")
)

// IncompatibleUnitsError reports an operation across different physical
// dimensions, such as adding a force to a length.
type IncompatibleUnitsError struct {
	Op   string
	From Unit
	To   Unit
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("units: cannot %s %q (%s) and %q (%s)",
		e.Op, e.From, e.From.Dimension(), e.To, e.To.Dimension())
}

func (e *IncompatibleUnitsError) Unwrap() error {
	return ErrIncompatibleUnits
}

// UnknownUnitError reports a unit symbol missing from the registry.
type UnknownUnitError struct {
	Symbol string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("units: unknown unit %q", e.Symbol)
}

func (e *UnknownUnitError) Unwrap() error {
	return ErrUnknownUnit
}
