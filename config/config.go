// Package config loads optional tuning parameters for the loop detector
// and image renderer from a YAML file.
//
// The file carries an outer kind selector plus an untyped "def" blob,
// which is re-marshaled and unmarshaled into a typed inner config. This
// keeps the file format extensible without committing to Tuning's exact
// shape at the outer level.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Tuning holds every constant an operator may want to override without
// recompiling. The yaml tags are lowercase because viper lowercases every
// key it reads, so the file's keys match them in any letter case.
type Tuning struct {
	// RingCapacity is W, the StateRing's fixed capacity (recommended
	// 100000).
	RingCapacity int `yaml:"ringcapacity"`
	// InitialProbeInterval is the starting value of the driver's
	// interval counter (default 2.0).
	InitialProbeInterval float64 `yaml:"initialprobeinterval"`
	// ProbeBackoffFactor is the geometric growth rate applied to the
	// probe interval after each unsuccessful probe (recommended 1.2,
	// must be in (1, 2)).
	ProbeBackoffFactor float64 `yaml:"probebackofffactor"`
	// MaxImageDimension is the raster safety threshold past which
	// rendering refuses to allocate (recommended 50000).
	MaxImageDimension int `yaml:"maximagedimension"`
}

// Default returns the recommended values.
func Default() Tuning {
	return Tuning{
		RingCapacity:         100000,
		InitialProbeInterval: 2.0,
		ProbeBackoffFactor:   1.2,
		MaxImageDimension:    50000,
	}
}

// outerConfig is the file's top-level shape: a kind selector plus an
// untyped "def" payload.
type outerConfig struct {
	Kind string      `mapstructure:"kind"`
	Def  interface{} `mapstructure:"def"`
}

// Load reads tuning overrides from a YAML file at path, starting from
// Default() and overriding only the fields present in the file.
func Load(path string) (Tuning, error) {
	tuning := Default()

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return Tuning{}, err
	}

	outer := &outerConfig{}
	if err := vp.Unmarshal(outer); err != nil {
		return Tuning{}, err
	}

	spec, err := yaml.Marshal(outer.Def)
	if err != nil {
		return Tuning{}, err
	}

	if err := yaml.Unmarshal(spec, &tuning); err != nil {
		return Tuning{}, err
	}

	return tuning, nil
}
