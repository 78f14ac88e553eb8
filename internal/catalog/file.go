package catalog

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/mechcalc/internal/material"
	"github.com/alexiusacademia/mechcalc/internal/motor"
	"github.com/alexiusacademia/mechcalc/internal/pneumatics"
	"github.com/alexiusacademia/mechcalc/internal/units"
	"gopkg.in/yaml.v3"
)

// quantity reads "10 lbf*in" style scalars. A bare number keeps a
// dimensionless unit until or gives it the field's default.
type quantity struct {
	units.Quantity
	set bool
}

func (q *quantity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a quantity such as \"12 V\"", node.Line)
	}
	v, err := units.Parse(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	q.Quantity, q.set = v, true
	return nil
}

func (q quantity) or(def string) units.Quantity {
	if q.Unit().IsDimensionless() {
		return units.MustNew(q.Scalar(), def)
	}
	return q.Quantity
}

type materialEntry struct {
	Name         string   `yaml:"name"`
	SafeStrength quantity `yaml:"safe_strength"`
}

type motorEntry struct {
	Name           string   `yaml:"name"`
	StallTorque    quantity `yaml:"stall_torque"`
	StallCurrent   quantity `yaml:"stall_current"`
	FreeSpeed      quantity `yaml:"free_speed"`
	FreeCurrent    quantity `yaml:"free_current"`
	NominalVoltage quantity `yaml:"nominal_voltage"`
}

type compressorEntry struct {
	Name            string    `yaml:"name"`
	PolynomialTerms []float64 `yaml:"polynomial_terms"`
}

type file struct {
	Materials   []materialEntry   `yaml:"materials"`
	Motors      []motorEntry      `yaml:"motors"`
	Compressors []compressorEntry `yaml:"compressors"`
}

// Load reads a catalog file and merges it over the built-in tables.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Default().Merge(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Merge returns a new catalog with the YAML document's entries added.
// Entries sharing a name with an existing one replace it. c is not
// modified.
func (c *Catalog) Merge(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	out := *c
	for _, e := range f.Materials {
		m := material.Material{Name: e.Name, SafeStrength: e.SafeStrength.or("psi")}
		if err := m.Validate(); err != nil {
			return nil, err
		}
		out.materials = out.materials.with(m.Name, m)
	}
	for _, e := range f.Motors {
		s := motor.Spec{
			Name:           e.Name,
			StallTorque:    e.StallTorque.or("N*m"),
			StallCurrent:   e.StallCurrent.or("A"),
			FreeSpeed:      e.FreeSpeed.or("rpm"),
			FreeCurrent:    e.FreeCurrent.or("A"),
			NominalVoltage: motor.NominalVoltage,
			Quantity:       1,
		}
		if e.NominalVoltage.set {
			s.NominalVoltage = e.NominalVoltage.or("V")
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		out.motors = out.motors.with(s.Name, s)
	}
	for _, e := range f.Compressors {
		p := pneumatics.Compressor{Name: e.Name, PolynomialTerms: e.PolynomialTerms}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		out.compressors = out.compressors.with(p.Name, p)
	}
	return &out, nil
}
