// Package config holds the options of a spark view and loads them from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/oliverbestmann/spark/spark"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth        = 10.0
	DefaultSlope        = 0.0
	DefaultDuration     = 1000 * time.Millisecond
	DefaultDirection    = spark.TopLeftToBottomRight
	DefaultInterpolator = "accelerate"
)

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid spark configuration")

// Config is the complete configuration of a spark view.
type Config struct {
	// Color is used to stroke a horizontal spark line.
	Color Color

	// Width of the spark line.
	Width float64

	Slope     float64
	Duration  time.Duration
	Direction spark.Direction

	// Interpolator names the easing curve of a single pass, see Eases.
	Interpolator string

	Background    Color
	GradientStart Color
}

// document is the YAML representation of a Config. Missing keys keep their
// default values.
type document struct {
	SparkColor         *string   `yaml:"sparkColor"`
	SparkWidth         *float64  `yaml:"sparkWidth"`
	SparkSlope         *float64  `yaml:"sparkSlope"`
	SparkDuration      *int64    `yaml:"sparkDuration"`
	SparkDirection     yaml.Node `yaml:"sparkDirection"`
	SparkInterpolator  *string   `yaml:"sparkInterpolator"`
	BackgroundColor    *string   `yaml:"backgroundColor"`
	GradientStartColor *string   `yaml:"gradientStartColor"`
}

func Default() Config {
	return Config{
		Color:         MustParseColor("#FFFFFF"),
		Width:         DefaultWidth,
		Slope:         DefaultSlope,
		Duration:      DefaultDuration,
		Direction:     DefaultDirection,
		Interpolator:  DefaultInterpolator,
		Background:    MustParseColor("#000000"),
		GradientStart: MustParseColor("#000000"),
	}
}

// Load reads the configuration from a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults and validates the
// result.
func Parse(data []byte) (Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	colors := []struct {
		key    string
		value  *string
		target *Color
	}{
		{"sparkColor", doc.SparkColor, &cfg.Color},
		{"backgroundColor", doc.BackgroundColor, &cfg.Background},
		{"gradientStartColor", doc.GradientStartColor, &cfg.GradientStart},
	}

	for _, c := range colors {
		if c.value == nil {
			continue
		}

		color, err := ParseColor(*c.value)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, c.key, err)
		}

		*c.target = color
	}

	if doc.SparkWidth != nil {
		cfg.Width = *doc.SparkWidth
	}

	if doc.SparkSlope != nil {
		cfg.Slope = *doc.SparkSlope
	}

	if doc.SparkDuration != nil {
		cfg.Duration = time.Duration(*doc.SparkDuration) * time.Millisecond
	}

	switch doc.SparkDirection.Kind {
	case 0:
		// not set

	case yaml.ScalarNode:
		direction, err := spark.ParseDirection(doc.SparkDirection.Value)
		if err != nil {
			return Config{}, fmt.Errorf("%w: sparkDirection: %w", ErrInvalid, err)
		}

		cfg.Direction = direction

	default:
		return Config{}, fmt.Errorf("%w: sparkDirection must be a name or a number", ErrInvalid)
	}

	if doc.SparkInterpolator != nil {
		cfg.Interpolator = *doc.SparkInterpolator
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.Width) || math.IsInf(c.Width, 0) || c.Width < 0:
		return fmt.Errorf("%w: sparkWidth must be a non-negative number, got %v", ErrInvalid, c.Width)

	case math.IsNaN(c.Slope) || math.IsInf(c.Slope, 0):
		return fmt.Errorf("%w: sparkSlope must be finite, got %v", ErrInvalid, c.Slope)

	case c.Duration <= 0:
		return fmt.Errorf("%w: sparkDuration must be positive, got %s", ErrInvalid, c.Duration)

	case !c.Direction.Valid():
		return fmt.Errorf("%w: sparkDirection: unknown value %d", ErrInvalid, int(c.Direction))
	}

	if _, ok := Eases[c.Interpolator]; !ok {
		return fmt.Errorf("%w: sparkInterpolator: unknown value %q", ErrInvalid, c.Interpolator)
	}

	return nil
}

// Sweep returns the geometry configuration with a direction that agrees with
// the slope.
func (c Config) Sweep() spark.Sweep {
	sweep := spark.Sweep{
		Slope:       c.Slope,
		Direction:   c.Direction,
		StrokeWidth: c.Width,
	}

	return sweep.Normalized()
}

// Ease returns the easing curve of the configured interpolator, falling back
// to the default one.
func (c Config) Ease() func(float64) float64 {
	if fn, ok := Eases[c.Interpolator]; ok {
		return fn
	}

	return Eases[DefaultInterpolator]
}

// WithDirection selects a direction. The slope keeps its magnitude but its
// sign is flipped to agree with the direction, otherwise the direction would
// be corrected away.
func (c Config) WithDirection(direction spark.Direction) Config {
	c.Direction = direction

	rising := direction == spark.BottomLeftToTopRight || direction == spark.TopRightToBottomLeft
	if (rising && c.Slope < 0) || (!rising && c.Slope > 0) {
		c.Slope = -c.Slope
	}

	return c
}
