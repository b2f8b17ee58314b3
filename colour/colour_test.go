package colour

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

func TestNewWrapsHue(t *testing.T) {
	tests := []struct {
		hue  float32
		want float32
	}{
		{0, 0},
		{120, 120},
		{360, 0},
		{400, 40},
		{-30, 330},
	}

	for _, tt := range tests {
		if got := New(0.5, 0.1, tt.hue, 1).Hue; !mgl32.FloatEqualThreshold(got, tt.want, 1e-4) {
			t.Errorf("New(hue=%v).Hue = %v, want %v", tt.hue, got, tt.want)
		}
	}
}

func TestFromColorfulRed(t *testing.T) {
	c := FromColorful(colorful.Color{R: 1, G: 0, B: 0}, 1)

	if !mgl32.FloatEqualThreshold(c.Lightness, 0.628, 1e-3) {
		t.Errorf("red Lightness = %v, want 0.628", c.Lightness)
	}
	if !mgl32.FloatEqualThreshold(c.Chroma, 0.2577, 1e-3) {
		t.Errorf("red Chroma = %v, want 0.2577", c.Chroma)
	}
	if !mgl32.FloatEqualThreshold(c.Hue, 29.23, 0.05) {
		t.Errorf("red Hue = %v, want 29.23", c.Hue)
	}
}

func TestFallbackRoundTrip(t *testing.T) {
	for _, rgb := range []colorful.Color{
		{R: 1, G: 0, B: 0},
		{R: 0.2, G: 0.4, B: 0.6},
		{R: 0, G: 0, B: 0},
		{R: 1, G: 1, B: 1},
	} {
		got := FromColorful(rgb, 0.5).Fallback()
		want := mgl32.Vec4{float32(rgb.R), float32(rgb.G), float32(rgb.B), 0.5}
		for i := range want {
			if math.Abs(float64(got[i]-want[i])) > 2e-3 {
				t.Errorf("FromColorful(%v).Fallback() = %v, want %v", rgb, got, want)
				break
			}
		}
	}
}

func TestFallbackClamps(t *testing.T) {
	c := Oklcha{Lightness: 0.9, Chroma: 0.37, Hue: 150, Alpha: 2}
	if c.InGamut() {
		t.Fatalf("%v should be out of gamut", c)
	}

	got := c.Fallback()
	for i, v := range got {
		if v < 0 || v > 1 || math.IsNaN(float64(v)) {
			t.Errorf("Fallback()[%d] = %v, want value in [0, 1]", i, v)
		}
	}
	if got[3] != 1 {
		t.Errorf("Fallback() alpha = %v, want 1", got[3])
	}
}

func TestInGamut(t *testing.T) {
	tests := []struct {
		c    Oklcha
		want bool
	}{
		{Oklcha{Lightness: 0.5, Chroma: 0, Hue: 0, Alpha: 1}, true},
		{Oklcha{Lightness: 0.5, Chroma: 0.1, Hue: 120, Alpha: 1}, true},
		{Oklcha{Lightness: 1, Chroma: 0.37, Hue: 0, Alpha: 1}, false},
		{Oklcha{Lightness: 0, Chroma: 0.2, Hue: 270, Alpha: 1}, false},
	}

	for _, tt := range tests {
		if got := tt.c.InGamut(); got != tt.want {
			t.Errorf("%v.InGamut() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	got := Oklcha{Lightness: 0.5, Chroma: 0.1, Hue: 120, Alpha: 1}.String()
	want := "oklch(0.500 0.100 120.0 / 1.000)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInGamutPrimaries(t *testing.T) {
	// The sRGB corners sit on the gamut boundary, so their round trip
	// through OkLCh lands a little outside [0, 1].
	for _, rgb := range []colorful.Color{
		{R: 1, G: 0, B: 0},
		{R: 0, G: 1, B: 0},
		{R: 0, G: 0, B: 1},
		{R: 1, G: 1, B: 0},
		{R: 0, G: 1, B: 1},
		{R: 1, G: 0, B: 1},
		{R: 1, G: 1, B: 1},
	} {
		c := FromColorful(rgb, 1)
		if !c.InGamut() {
			t.Errorf("FromColorful(%v).InGamut() = false, want true (rgb %v)", rgb, c.Colorful())
		}
	}

	// Just past the tolerance is still rejected.
	c := FromColorful(colorful.Color{R: 1, G: 0, B: 0}, 1)
	c.Chroma += 0.01
	if c.InGamut() {
		t.Errorf("%v.InGamut() = true, want false", c)
	}
}
