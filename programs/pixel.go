package programs

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glpicker/colour"
)

// Constants shared with shaders/functions.glsl.
const (
	MaxChroma         = 0.37
	HueStripLightness = 0.75
	HueStripChroma    = 0.12

	CheckerDivisions = 24
	CheckerLight     = 0.8
	CheckerDark      = 0.6
)

// Pixel is the CPU reference for the fragment shader of k. uv is the quad
// coordinate in [0, 1] with the origin bottom left, frag the pixel centre in
// GL window coordinates. The result is straight alpha sRGB.
func (k Kind) Pixel(in Input, uv, frag mgl32.Vec2) mgl32.Vec4 {
	switch k {
	case Picker:
		return gamutOrClear(colour.Oklcha{
			Lightness: uv.Y(),
			Chroma:    uv.X() * MaxChroma,
			Hue:       in.Colour.Hue,
			Alpha:     1,
		})
	case Picker2:
		return gamutOrClear(colour.Oklcha{
			Lightness: in.Colour.Lightness,
			Chroma:    uv.Y() * MaxChroma,
			Hue:       uv.X() * 360,
			Alpha:     1,
		})
	case Hue:
		return colour.Oklcha{
			Lightness: HueStripLightness,
			Chroma:    HueStripChroma,
			Hue:       uv.X() * 360,
			Alpha:     1,
		}.Fallback()
	case Lightness:
		return gamutOrClear(colour.Oklcha{
			Lightness: uv.X(),
			Chroma:    in.Colour.Chroma,
			Hue:       in.Colour.Hue,
			Alpha:     1,
		})
	case Chroma:
		return gamutOrClear(colour.Oklcha{
			Lightness: in.Colour.Lightness,
			Chroma:    uv.X() * MaxChroma,
			Hue:       in.Colour.Hue,
			Alpha:     1,
		})
	case Alpha:
		return overChecker(in.Fallback.Vec3().Vec4(uv.X()), frag, in.Width)
	case Final:
		return overChecker(in.Fallback, frag, in.Width)
	case FinalPrevious:
		return overChecker(in.PreviousFallback, frag, in.Width)
	}
	return mgl32.Vec4{}
}

func gamutOrClear(c colour.Oklcha) mgl32.Vec4 {
	if !c.InGamut() {
		return mgl32.Vec4{}
	}
	return c.Fallback()
}

// Checker returns the grey of the checkerboard cell containing frag.
func Checker(frag mgl32.Vec2, width float32) float32 {
	cell := float32(math.Max(float64(width)/CheckerDivisions, 1))
	x := math.Floor(float64(frag.X() / cell))
	y := math.Floor(float64(frag.Y() / cell))
	if math.Mod(x+y, 2) < 1 {
		return CheckerLight
	}
	return CheckerDark
}

func overChecker(c mgl32.Vec4, frag mgl32.Vec2, width float32) mgl32.Vec4 {
	bg := Checker(frag, width)
	a := c.W()
	return mgl32.Vec4{
		bg*(1-a) + c.X()*a,
		bg*(1-a) + c.Y()*a,
		bg*(1-a) + c.Z()*a,
		1,
	}
}
