// SPDX-License-Identifier: MIT

// Package config holds the solver settings shared by the seidel commands.
// Settings come from defaults, then an optional YAML file, then flags.
package config

import (
	"math"
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/katalvlaran/seidel/seidel"
)

// Defaults.
const (
	DefaultEpsilon        = 1e-6
	DefaultPivotTolerance = 1e-12
)

// Config is the on-disk shape of a settings file:
//
//	epsilon: 1e-8
//	maxIterations: 5000
//	pivotTolerance: 1e-12
//	keepHistory: false
//	debug: true
//	metricsFile: /var/lib/node_exporter/seidel.prom
type Config struct {
	Epsilon        float64 `json:"epsilon"`
	MaxIterations  int     `json:"maxIterations"`
	PivotTolerance float64 `json:"pivotTolerance"`
	KeepHistory    bool    `json:"keepHistory,omitempty"`
	Debug          bool    `json:"debug,omitempty"`
	MetricsFile    string  `json:"metricsFile,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Epsilon:        DefaultEpsilon,
		MaxIterations:  seidel.DefaultMaxIterations,
		PivotTolerance: DefaultPivotTolerance,
	}
}

// Load reads path and overlays it on Default. Keys missing from the file
// keep their default values. The result is validated.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := c.Validate(); err != nil {
		return c, errors.Wrapf(err, "config %s", path)
	}

	return c, nil
}

// Validate rejects settings that Solve would refuse.
func (c Config) Validate() error {
	if !(c.Epsilon > 0) || math.IsInf(c.Epsilon, 0) {
		return errors.Errorf("epsilon must be a finite number > 0, got %g", c.Epsilon)
	}
	if c.MaxIterations <= 0 {
		return errors.Errorf("maxIterations must be > 0, got %d", c.MaxIterations)
	}
	if c.PivotTolerance < 0 || math.IsNaN(c.PivotTolerance) {
		return errors.Errorf("pivotTolerance must be >= 0, got %g", c.PivotTolerance)
	}

	return nil
}

// YAML renders c in the file format Load accepts.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	return out, errors.Wrap(err, "encoding config")
}
