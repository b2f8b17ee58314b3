// Package widget lays out and paints the colour picker layers, on a GL
// surface with a programs.Set or on the CPU into an image.
package widget

import (
	"math"

	"github.com/stewi1014/glpicker/colour"
	"github.com/stewi1014/glpicker/programs"
)

// Surface is a GL context that can restrict drawing to a rectangle.
type Surface interface {
	programs.Context
	Viewport(x, y, width, height int32)
}

type Widget struct {
	layers []Layer
	width  int
	height int
	input  programs.Input
}

// New builds a widget from a validated config.
func New(config *Config) *Widget {
	w := &Widget{width: config.Width}
	w.layers, w.height = Layout(config.Width)

	previous := config.Previous.Oklcha()
	w.input = programs.Input{
		PreviousFallback: previous.Fallback(),
		Width:            float32(config.Width),
	}
	w.SetColour(config.Colour.Oklcha())
	return w
}

func (w *Widget) Width() int  { return w.width }
func (w *Widget) Height() int { return w.height }

func (w *Widget) Layers() []Layer { return w.layers }

func (w *Widget) Colour() colour.Oklcha { return w.input.Colour }

// SetColour replaces the current colour and its fallback.
func (w *Widget) SetColour(c colour.Oklcha) {
	w.input.Colour = c
	w.input.Fallback = c.Fallback()
}

// Input returns what each layer's program is painted with.
func (w *Widget) Input() programs.Input { return w.input }

// Paint draws every layer with its program from set. The widget is placed at
// the top left of a window windowHeight device pixels tall, with scale device
// pixels per layout pixel.
func (w *Widget) Paint(s Surface, set *programs.Set, windowHeight int, scale float64) {
	in := w.input
	in.Width *= float32(math.Max(scale, 1))

	for _, layer := range w.layers {
		s.Viewport(layer.Viewport(windowHeight, scale))
		set.Paint(s, layer.Kind, in)
	}
}
