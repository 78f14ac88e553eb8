package units

import (
	"strconv"
	"strings"
)

// Base dimensions. Every unit is a vector of integer exponents over these.
const (
	Length = iota
	Mass
	Time
	Current
	Angle
	numBase
)

var baseNames = [numBase]string{"length", "mass", "time", "current", "angle"}

// Dimension is an exponent vector over the base dimensions.
type Dimension [numBase]int

func dim(length, mass, time, current, angle int) Dimension {
	return Dimension{length, mass, time, current, angle}
}

func (d Dimension) add(o Dimension) Dimension {
	for i := range d {
		d[i] += o[i]
	}
	return d
}

func (d Dimension) scale(n int) Dimension {
	for i := range d {
		d[i] *= n
	}
	return d
}

// IsZero reports whether d is the dimensionless vector.
func (d Dimension) IsZero() bool {
	return d == Dimension{}
}

func (d Dimension) String() string {
	if d.IsZero() {
		return "dimensionless"
	}
	var parts []string
	for i, e := range d {
		switch {
		case e == 0:
		case e == 1:
			parts = append(parts, baseNames[i])
		default:
			parts = append(parts, baseNames[i]+"^"+strconv.Itoa(e))
		}
	}
	return strings.Join(parts, "*")
}
