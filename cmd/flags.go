package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/spf13/pflag"
)

// quantityValue is a pflag.Value holding a units.Quantity. Bare numbers
// take the default unit; "-" or "" mean zero.
type quantityValue struct {
	q    *units.Quantity
	def  units.Unit
	text string
}

func (v *quantityValue) String() string { return v.text }

func (v *quantityValue) Type() string { return v.def.String() }

func (v *quantityValue) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		*v.q = units.New(0, v.def)
		v.text = s
		return nil
	}
	q, err := units.ParseDefault(s, v.def)
	if err != nil {
		return err
	}
	if !q.Unit().Compatible(v.def) {
		return fmt.Errorf("%s is not convertible to %s: %w", q, v.def, units.ErrIncompatibleUnits)
	}
	*v.q = q
	v.text = s
	return nil
}

// quantityVar defines a quantity flag. value is parsed like a command
// line argument; def is the unit for bare numbers.
func quantityVar(fs *pflag.FlagSet, p *units.Quantity, name, value, def, usage string) {
	v := &quantityValue{q: p, def: units.MustUnit(def)}
	if err := v.Set(value); err != nil {
		panic(fmt.Sprintf("flag %s: bad default %q: %v", name, value, err))
	}
	fs.Var(v, name, usage)
}

// countValue is an int flag that also takes "-" or "" as zero, the same
// blank sentinel quantity flags accept.
type countValue struct {
	n    *int
	text string
}

func (v *countValue) String() string { return v.text }

func (v *countValue) Type() string { return "int" }

func (v *countValue) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		*v.n = 0
		v.text = s
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%q is not a whole number", s)
	}
	*v.n = n
	v.text = s
	return nil
}

// countVarP defines a count flag with an optional shorthand.
func countVarP(fs *pflag.FlagSet, p *int, name, shorthand string, value int, usage string) {
	*p = value
	fs.VarP(&countValue{n: p, text: strconv.Itoa(value)}, name, shorthand, usage)
}
