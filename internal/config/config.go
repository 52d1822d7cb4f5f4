// Package config loads the configuration of the sleefe command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"honnef.co/go/sleefe"
)

const (
	DefaultLogLevel  = "info"
	DefaultPrecision = 10
	DefaultSegments  = 4
	DefaultSamples   = 10000
)

// DefaultCurves are the control values of the curves the demo command builds
// sleefes for, one curve of every supported degree.
var DefaultCurves = [][]float64{
	{0.0, 1.0, 0.8},
	{0.0, 1.0, 0.8, -0.2},
	{0.0, 1.0, 0.8, -0.2, 2.5},
	{0.0, 1.0, 0.8, -0.2, 2.5, 3.5},
	{0.0, 1.0, 0.8, -0.2, 2.5, 3.5, 2.0},
	{0.0, 1.0, 0.8, -0.2, 2.5, 3.5, 2.0, 5.2},
	{0.0, 1.0, 0.8, -0.2, 2.5, 3.5, 2.0, 5.2, 4.0},
	{0.0, 1.0, 0.8, -0.2, 2.5, 3.5, 2.0, 5.2, 4.0, 0.5},
}

type Config struct {
	LogLevel string `yaml:"log-level"`
	// Precision is the number of decimals of breakpoint values in sleefe
	// files.
	Precision int `yaml:"precision"`
	// Segments is the number of segments used when none is given.
	Segments int `yaml:"segments"`
	// Samples is the number of intervals the demo samples each curve at.
	Samples int         `yaml:"samples"`
	Curves  [][]float64 `yaml:"curves,flow"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	curves := make([][]float64, len(DefaultCurves))
	for i, c := range DefaultCurves {
		curves[i] = append([]float64(nil), c...)
	}
	return Config{
		LogLevel:  DefaultLogLevel,
		Precision: DefaultPrecision,
		Segments:  DefaultSegments,
		Samples:   DefaultSamples,
		Curves:    curves,
	}
}

// Load reads the configuration file at path. Settings missing from the file
// keep their defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that all settings are usable.
func (c Config) Validate() error {
	var errs []error
	if c.Precision < 0 || c.Precision > 17 {
		errs = append(errs, fmt.Errorf("precision %d not in [0, 17]", c.Precision))
	}
	if c.Segments < 1 || c.Segments > sleefe.MaximumNumberOfSegments {
		errs = append(errs, fmt.Errorf("segments %d not in [1, %d]", c.Segments, sleefe.MaximumNumberOfSegments))
	}
	if c.Samples < 1 {
		errs = append(errs, fmt.Errorf("samples %d must be positive", c.Samples))
	}
	for i, curve := range c.Curves {
		if d := len(curve) - 1; d < sleefe.MinimumDegree || d > sleefe.MaximumDegree {
			errs = append(errs, fmt.Errorf("curve %d has degree %d, not in [%d, %d]",
				i, d, sleefe.MinimumDegree, sleefe.MaximumDegree))
		}
	}
	return errors.Join(errs...)
}
