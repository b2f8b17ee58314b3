// Package colour holds the OkLCh colour value the picker renders and its
// resolution to a displayable sRGB fallback.
package colour

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// GamutEpsilon is how far outside [0, 1] a linear conversion may land and
// still count as displayable. It absorbs the difference between the
// conversion matrices used here and the ones in the shader library, which
// declares the same value as GAMUT_EPSILON.
const GamutEpsilon = 0.002

// Oklcha is a colour in the OkLCh space with straight alpha.
// Hue is in degrees.
type Oklcha struct {
	Lightness float32
	Chroma    float32
	Hue       float32
	Alpha     float32
}

// New returns an Oklcha with hue wrapped into [0, 360).
func New(lightness, chroma, hue, alpha float32) Oklcha {
	return Oklcha{
		Lightness: lightness,
		Chroma:    chroma,
		Hue:       wrapHue(hue),
		Alpha:     alpha,
	}
}

// FromColorful converts an sRGB colour.
func FromColorful(c colorful.Color, alpha float32) Oklcha {
	l, ch, h := c.OkLch()
	return New(float32(l), float32(ch), float32(h), alpha)
}

// Colorful returns the unclamped sRGB value. Components outside [0, 1]
// mean the colour is not displayable.
func (c Oklcha) Colorful() colorful.Color {
	return colorful.OkLch(float64(c.Lightness), float64(c.Chroma), float64(c.Hue))
}

// InGamut reports whether c is displayable in sRGB without clamping.
func (c Oklcha) InGamut() bool {
	rgb := c.Colorful()
	for _, v := range [...]float64{rgb.R, rgb.G, rgb.B} {
		if math.IsNaN(v) || v < -GamutEpsilon || v > 1+GamutEpsilon {
			return false
		}
	}
	return true
}

// Fallback returns the gamut clamped sRGB value and alpha, each in [0, 1].
func (c Oklcha) Fallback() mgl32.Vec4 {
	rgb := c.Colorful().Clamped()
	return mgl32.Vec4{
		float32(rgb.R),
		float32(rgb.G),
		float32(rgb.B),
		mgl32.Clamp(c.Alpha, 0, 1),
	}
}

// String formats c as a CSS oklch() colour.
func (c Oklcha) String() string {
	return fmt.Sprintf("oklch(%.3f %.3f %.1f / %.3f)", c.Lightness, c.Chroma, c.Hue, c.Alpha)
}

func wrapHue(hue float32) float32 {
	h := float32(math.Mod(float64(hue), 360))
	if h < 0 {
		h += 360
	}
	return h
}
