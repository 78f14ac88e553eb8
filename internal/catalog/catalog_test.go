package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLookups(t *testing.T) {
	c := Default()

	m, err := c.Material("Steel 4140")
	require.NoError(t, err)
	assert.Equal(t, 30000.0, m.SafeStrength.Scalar())

	s, err := c.Motor("CIM")
	require.NoError(t, err)
	assert.Equal(t, 2.41, s.StallTorque.Scalar())

	p, err := c.Compressor("Thomas 215")
	require.NoError(t, err)
	assert.Len(t, p.PolynomialTerms, 7)

	assert.Len(t, c.Materials(), 10)
	assert.Len(t, c.Motors(), 9)
	assert.Len(t, c.Compressors(), 5)
	assert.Equal(t, "CIM", c.Motors()[0].Name)
}

func TestLookupIgnoresCase(t *testing.T) {
	s, err := Default().Motor("falcon 500")
	require.NoError(t, err)
	assert.Equal(t, "Falcon 500", s.Name)
}

func TestLookupNotFound(t *testing.T) {
	_, err := Default().Material("Unobtainium")
	require.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "material", nf.Kind)
	assert.Equal(t, "Unobtainium", nf.Name)
	assert.EqualError(t, err, `catalog: unknown material "Unobtainium"`)

	_, err = Default().Compressor("")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListingsAreCopies(t *testing.T) {
	c := Default()
	c.Motors()[0].Name = "changed"
	assert.Equal(t, "CIM", c.Motors()[0].Name)

	a, err := c.Compressor("VIAIR 90C")
	require.NoError(t, err)
	want := a.PolynomialTerms[0]
	a.PolynomialTerms[0] = 999

	b, err := c.Compressor("VIAIR 90C")
	require.NoError(t, err)
	assert.Equal(t, want, b.PolynomialTerms[0])

	list := c.Compressors()
	want = list[1].PolynomialTerms[0]
	list[1].PolynomialTerms[0] = 777
	b, err = c.Compressor(list[1].Name)
	require.NoError(t, err)
	assert.Equal(t, want, b.PolynomialTerms[0])
}

func TestLookupIgnoringCaseIsOrdered(t *testing.T) {
	c, err := Default().Merge([]byte(`
materials:
  - name: delrin
    safe_strength: 1 psi
  - name: DELRIN
    safe_strength: 2 psi
`))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		m, err := c.Material("DeLrIn")
		require.NoError(t, err)
		assert.Equal(t, "Delrin", m.Name)
	}
}

const extraYAML = `
materials:
  - name: Titanium 6Al-4V
    safe_strength: 60000
  - name: Steel 4140
    safe_strength: 250 MPa
motors:
  - name: Test Motor
    stall_torque: 20 lbf*in
    stall_current: 100
    free_speed: 6000
    free_current: 2 A
compressors:
  - name: Shop Air
    polynomial_terms: [2.5, -0.01]
`

func TestMerge(t *testing.T) {
	base := Default()
	c, err := base.Merge([]byte(extraYAML))
	require.NoError(t, err)

	ti, err := c.Material("Titanium 6Al-4V")
	require.NoError(t, err)
	assert.Equal(t, "psi", ti.SafeStrength.Unit().String())
	assert.Equal(t, 60000.0, ti.SafeStrength.Scalar())

	// Replaced in place, keeping its position.
	steel, err := c.Material("Steel 4140")
	require.NoError(t, err)
	assert.Equal(t, "MPa", steel.SafeStrength.Unit().String())
	assert.Len(t, c.Materials(), 11)

	m, err := c.Motor("Test Motor")
	require.NoError(t, err)
	assert.Equal(t, "lbf*in", m.StallTorque.Unit().String())
	assert.Equal(t, "A", m.StallCurrent.Unit().String())
	assert.Equal(t, "rpm", m.FreeSpeed.Unit().String())
	assert.Equal(t, 12.0, m.NominalVoltage.Scalar())
	assert.Equal(t, 1, m.Quantity)

	air, err := c.Compressor("Shop Air")
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, -0.01}, air.PolynomialTerms)

	// The receiver is untouched.
	_, err = base.Material("Titanium 6Al-4V")
	assert.ErrorIs(t, err, ErrNotFound)
	orig, err := base.Material("Steel 4140")
	require.NoError(t, err)
	assert.Equal(t, "psi", orig.SafeStrength.Unit().String())
}

func TestMergeNominalVoltage(t *testing.T) {
	c, err := Default().Merge([]byte(`
motors:
  - name: Low Volt
    stall_torque: 1 N*m
    stall_current: 50 A
    free_speed: 3000 rpm
    free_current: 1 A
    nominal_voltage: 6
`))
	require.NoError(t, err)
	m, err := c.Motor("Low Volt")
	require.NoError(t, err)
	assert.Equal(t, units.MustNew(6, "V"), m.NominalVoltage)
}

func TestMergeErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":        "materials: [",
		"unknown unit":  "materials:\n  - name: X\n    safe_strength: 10 furlongs\n",
		"not a stress":  "materials:\n  - name: X\n    safe_strength: 10 in\n",
		"not a scalar":  "materials:\n  - name: X\n    safe_strength: [1, 2]\n",
		"missing name":  "compressors:\n  - polynomial_terms: [1]\n",
		"no terms":      "compressors:\n  - name: Empty\n",
		"bad nameplate": "motors:\n  - name: Dead\n    stall_torque: 1 N*m\n    free_speed: 100 rpm\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Default().Merge([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestMergeReportsLine(t *testing.T) {
	_, err := Default().Merge([]byte("materials:\n  - name: X\n    safe_strength: 10 furlongs\n"))
	require.ErrorIs(t, err, units.ErrUnknownUnit)
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(extraYAML), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	_, err = c.Motor("Test Motor")
	assert.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
