// Package catalog holds the read-only lookup tables of materials, motors
// and compressors, optionally extended from a YAML file.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexiusacademia/mechcalc/internal/material"
	"github.com/alexiusacademia/mechcalc/internal/motor"
	"github.com/alexiusacademia/mechcalc/internal/pneumatics"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("catalog: not found")

// NotFoundError reports a lookup of an unknown entry.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog: unknown %s %q", e.Kind, e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// table keeps entries in insertion order with a name index. It is never
// modified after a Catalog is built; with returns a new table. clone, when
// set, copies entries going in and out so callers never share their
// backing arrays.
type table[T any] struct {
	kind  string
	names []string
	items []T
	index map[string]int
	clone func(T) T
}

func newTable[T any](kind string, clone func(T) T) table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return table[T]{kind: kind, index: map[string]int{}, clone: clone}
}

func (t table[T]) with(name string, v T) table[T] {
	out := table[T]{
		kind:  t.kind,
		names: append(make([]string, 0, len(t.names)+1), t.names...),
		items: append(make([]T, 0, len(t.items)+1), t.items...),
		index: make(map[string]int, len(t.index)+1),
		clone: t.clone,
	}
	for k, i := range t.index {
		out.index[k] = i
	}
	v = t.clone(v)
	if i, ok := out.index[name]; ok {
		out.items[i] = v
		return out
	}
	out.index[name] = len(out.items)
	out.names = append(out.names, name)
	out.items = append(out.items, v)
	return out
}

// get matches exactly first, then the first entry equal ignoring case.
func (t table[T]) get(name string) (T, error) {
	if i, ok := t.index[name]; ok {
		return t.clone(t.items[i]), nil
	}
	for i, k := range t.names {
		if strings.EqualFold(k, name) {
			return t.clone(t.items[i]), nil
		}
	}
	var zero T
	return zero, &NotFoundError{Kind: t.kind, Name: name}
}

func (t table[T]) all() []T {
	out := make([]T, len(t.items))
	for i, v := range t.items {
		out[i] = t.clone(v)
	}
	return out
}

// Catalog is an immutable set of lookup tables.
type Catalog struct {
	materials   table[material.Material]
	motors      table[motor.Spec]
	compressors table[pneumatics.Compressor]
}

// Default returns a catalog of the built-in tables.
func Default() *Catalog {
	c := &Catalog{
		materials:   newTable[material.Material]("material", nil),
		motors:      newTable[motor.Spec]("motor", nil),
		compressors: newTable("compressor", pneumatics.Compressor.Clone),
	}
	for _, m := range material.Builtin() {
		c.materials = c.materials.with(m.Name, m)
	}
	for _, s := range motor.Builtin() {
		c.motors = c.motors.with(s.Name, s)
	}
	for _, p := range pneumatics.Builtin() {
		c.compressors = c.compressors.with(p.Name, p)
	}
	return c
}

// Material looks up a material by name.
func (c *Catalog) Material(name string) (material.Material, error) {
	return c.materials.get(name)
}

// Motor looks up a motor by name.
func (c *Catalog) Motor(name string) (motor.Spec, error) {
	return c.motors.get(name)
}

// Compressor looks up a compressor by name.
func (c *Catalog) Compressor(name string) (pneumatics.Compressor, error) {
	return c.compressors.get(name)
}

// Materials lists materials in catalog order.
func (c *Catalog) Materials() []material.Material { return c.materials.all() }

// Motors lists motors in catalog order.
func (c *Catalog) Motors() []motor.Spec { return c.motors.all() }

// Compressors lists compressors in catalog order.
func (c *Catalog) Compressors() []pneumatics.Compressor { return c.compressors.all() }
