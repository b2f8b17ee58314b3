package widget

import (
	"image"
	"math"

	"github.com/stewi1014/glpicker/programs"
)

// Layer is the area one program kind is drawn into, in top left pixel
// coordinates.
type Layer struct {
	Kind programs.Kind
	Rect image.Rectangle
}

// Viewport returns the layer rectangle in GL window coordinates, whose origin
// is bottom left, for a window windowHeight device pixels tall. scale is the
// number of device pixels per layout pixel; values below 1 are taken as 1.
func (l Layer) Viewport(windowHeight int, scale float64) (x, y, width, height int32) {
	scale = math.Max(scale, 1)
	device := func(v int) int32 { return int32(math.Round(float64(v) * scale)) }

	x0, x1 := device(l.Rect.Min.X), device(l.Rect.Max.X)
	y0, y1 := device(l.Rect.Min.Y), device(l.Rect.Max.Y)
	return x0, int32(windowHeight) - y1, x1 - x0, y1 - y0
}

// Layout places every kind for a widget width pixels wide: the two picker
// areas side by side, the four strips below them, then the previous and
// current swatches. It returns the layers and the widget height.
func Layout(width int) ([]Layer, int) {
	half := width / 2
	gap := width / 48
	strip := width / 12
	swatch := width / 6

	layers := []Layer{
		{programs.Picker, image.Rect(0, 0, half, half)},
		{programs.Picker2, image.Rect(half, 0, width, half)},
	}

	y := half + gap
	for _, kind := range []programs.Kind{programs.Hue, programs.Lightness, programs.Chroma, programs.Alpha} {
		layers = append(layers, Layer{kind, image.Rect(0, y, width, y+strip)})
		y += strip + gap
	}

	layers = append(layers,
		Layer{programs.FinalPrevious, image.Rect(0, y, half, y+swatch)},
		Layer{programs.Final, image.Rect(half, y, width, y+swatch)},
	)

	return layers, y + swatch
}
