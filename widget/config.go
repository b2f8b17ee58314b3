package widget

import (
	"errors"
	"fmt"
	"math"

	"github.com/stewi1014/glpicker/colour"
	"github.com/stewi1014/glpicker/programs"
)

// MinWidth keeps every layer at least a pixel apart.
const MinWidth = 48

var ErrInvalidConfig = errors.New("invalid widget config")

// Config sizes the widget and picks the current and previous colours.
type Config struct {
	Width    int `dialsdesc:"Widget width in pixels"`
	Colour   *ColourConfig
	Previous *ColourConfig
}

type ColourConfig struct {
	Lightness float64 `dialsdesc:"OkLCh lightness, 0 to 1"`
	Chroma    float64 `dialsdesc:"OkLCh chroma, 0 to 0.37"`
	Hue       float64 `dialsdesc:"OkLCh hue in degrees"`
	Alpha     float64 `dialsdesc:"Alpha, 0 to 1"`
}

func DefaultConfig() *Config {
	return &Config{
		Width: 360,
		Colour: &ColourConfig{
			Lightness: 0.7,
			Chroma:    0.15,
			Hue:       250,
			Alpha:     1,
		},
		Previous: &ColourConfig{
			Lightness: 0.6,
			Chroma:    0.2,
			Hue:       30,
			Alpha:     0.6,
		},
	}
}

func (c *Config) Validate() error {
	if c.Width < MinWidth {
		return fmt.Errorf("%w: width %d is less than %d", ErrInvalidConfig, c.Width, MinWidth)
	}
	if c.Colour == nil || c.Previous == nil {
		return fmt.Errorf("%w: missing colour", ErrInvalidConfig)
	}
	if err := c.Colour.Validate(); err != nil {
		return fmt.Errorf("colour: %w", err)
	}
	if err := c.Previous.Validate(); err != nil {
		return fmt.Errorf("previous: %w", err)
	}
	return nil
}

func (c *ColourConfig) Validate() error {
	for _, f := range []struct {
		name     string
		v        float64
		min, max float64
	}{
		{"lightness", c.Lightness, 0, 1},
		{"chroma", c.Chroma, 0, programs.MaxChroma},
		{"hue", c.Hue, math.Inf(-1), math.Inf(1)},
		{"alpha", c.Alpha, 0, 1},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < f.min || f.v > f.max {
			return fmt.Errorf("%w: %s %v out of range [%v, %v]", ErrInvalidConfig, f.name, f.v, f.min, f.max)
		}
	}
	return nil
}

func (c *ColourConfig) Oklcha() colour.Oklcha {
	return colour.New(float32(c.Lightness), float32(c.Chroma), float32(c.Hue), float32(c.Alpha))
}
