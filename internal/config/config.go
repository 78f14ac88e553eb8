// Package config loads user preferences from ~/.mechcalc.yaml, an
// explicit file and MECHCALC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/mechcalc/internal/gear"
	"github.com/alexiusacademia/mechcalc/internal/units"
	"github.com/spf13/viper"
)

// Keys
const (
	KeyLogLevel      = "log.level"
	KeyPrecision     = "output.precision"
	KeyPressureAngle = "defaults.pressure_angle"
	KeyCurrentLimit  = "defaults.current_limit"
	KeyCatalogFile   = "catalog.file"
)

// Config holds the resolved settings.
type Config struct {
	LogLevel      string
	Precision     int
	PressureAngle gear.PressureAngle
	CurrentLimit  units.Quantity
	CatalogFile   string
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyPrecision, 2)
	v.SetDefault(KeyPressureAngle, "20")
	v.SetDefault(KeyCurrentLimit, "40 A")
	v.SetDefault(KeyCatalogFile, "")
}

// Load reads path, or .mechcalc.yaml from the home directory when path is
// empty. A missing home file is not an error; a missing explicit file is.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("MECHCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".mechcalc")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	c := Config{
		LogLevel:    v.GetString(KeyLogLevel),
		Precision:   v.GetInt(KeyPrecision),
		CatalogFile: v.GetString(KeyCatalogFile),
	}
	if c.Precision < 0 || c.Precision > 12 {
		return Config{}, fmt.Errorf("config: %s must be between 0 and 12, got %d", KeyPrecision, c.Precision)
	}

	pa, err := gear.ParsePressureAngle(v.GetString(KeyPressureAngle))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeyPressureAngle, err)
	}
	c.PressureAngle = pa

	limit, err := units.ParseDefault(v.GetString(KeyCurrentLimit), units.MustUnit("A"))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeyCurrentLimit, err)
	}
	if !limit.Unit().Compatible(units.MustUnit("A")) {
		return Config{}, fmt.Errorf("config: %s: %s is not a current: %w", KeyCurrentLimit, limit, units.ErrIncompatibleUnits)
	}
	c.CurrentLimit = limit
	return c, nil
}
