package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/mechcalc/internal/gear"
	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, 2, c.Precision)
	assert.Equal(t, gear.PressureAngle20, c.PressureAngle)
	assert.Equal(t, units.MustNew(40, "A"), c.CurrentLimit)
	assert.Empty(t, c.CatalogFile)
}

func TestLoadHomeFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".mechcalc.yaml"), []byte(`
log:
  level: info
defaults:
  pressure_angle: "14.5"
`), 0o644))

	c, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, gear.PressureAngle14p5, c.PressureAngle)
}

func TestLoadExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "robot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output:
  precision: 4
defaults:
  current_limit: 60
catalog:
  file: parts.yaml
`), 0o644))

	c, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Precision)
	assert.Equal(t, units.MustNew(60, "A"), c.CurrentLimit)
	assert.Equal(t, "parts.yaml", c.CatalogFile)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MECHCALC_LOG_LEVEL", "debug")
	t.Setenv("MECHCALC_DEFAULTS_CURRENT_LIMIT", "30000 mA")

	c, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, units.MustNew(30000, "mA"), c.CurrentLimit)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"precision":      "MECHCALC_OUTPUT_PRECISION",
		"pressure angle": "MECHCALC_DEFAULTS_PRESSURE_ANGLE",
		"current limit":  "MECHCALC_DEFAULTS_CURRENT_LIMIT",
	}
	values := map[string]string{
		"precision":      "40",
		"pressure angle": "25",
		"current limit":  "12 V",
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Setenv(env, values[name])
			_, err := Load(viper.New(), "")
			assert.Error(t, err)
		})
	}
}
