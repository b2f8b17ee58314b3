package widget

import (
	"image"
	"testing"

	"github.com/stewi1014/glpicker/programs"
)

func TestLayoutCoversEveryKind(t *testing.T) {
	layers, _ := Layout(360)

	seen := make(map[programs.Kind]int)
	for _, l := range layers {
		seen[l.Kind]++
	}
	for _, kind := range programs.Kinds() {
		if seen[kind] != 1 {
			t.Errorf("kind %v laid out %d times, want 1", kind, seen[kind])
		}
	}
}

func TestLayoutFits(t *testing.T) {
	for _, width := range []int{MinWidth, 96, 360, 1001} {
		layers, height := Layout(width)
		bounds := image.Rect(0, 0, width, height)

		for i, a := range layers {
			if a.Rect.Empty() {
				t.Errorf("width %d: %v has an empty rectangle", width, a.Kind)
			}
			if !a.Rect.In(bounds) {
				t.Errorf("width %d: %v %v outside %v", width, a.Kind, a.Rect, bounds)
			}
			for _, b := range layers[i+1:] {
				if a.Rect.Overlaps(b.Rect) {
					t.Errorf("width %d: %v %v overlaps %v %v", width, a.Kind, a.Rect, b.Kind, b.Rect)
				}
			}
		}
	}
}

func TestLayout96(t *testing.T) {
	layers, height := Layout(96)
	if height != 106 {
		t.Errorf("Layout(96) height = %d, want 106", height)
	}

	want := map[programs.Kind]image.Rectangle{
		programs.Picker:        image.Rect(0, 0, 48, 48),
		programs.Picker2:       image.Rect(48, 0, 96, 48),
		programs.Hue:           image.Rect(0, 50, 96, 58),
		programs.Alpha:         image.Rect(0, 80, 96, 88),
		programs.FinalPrevious: image.Rect(0, 90, 48, 106),
		programs.Final:         image.Rect(48, 90, 96, 106),
	}
	for _, l := range layers {
		if r, ok := want[l.Kind]; ok && l.Rect != r {
			t.Errorf("%v rect = %v, want %v", l.Kind, l.Rect, r)
		}
	}
}

func TestLayerViewport(t *testing.T) {
	l := Layer{Kind: programs.Hue, Rect: image.Rect(10, 20, 110, 50)}

	tests := []struct {
		windowHeight int
		scale        float64
		want         [4]int32
	}{
		{200, 1, [4]int32{10, 150, 100, 30}},
		{200, 0, [4]int32{10, 150, 100, 30}},
		{400, 2, [4]int32{20, 300, 200, 60}},
		{300, 1.5, [4]int32{15, 225, 150, 45}},
	}

	for _, tt := range tests {
		x, y, w, h := l.Viewport(tt.windowHeight, tt.scale)
		if got := [4]int32{x, y, w, h}; got != tt.want {
			t.Errorf("Viewport(%d, %v) = %v, want %v", tt.windowHeight, tt.scale, got, tt.want)
		}
	}
}

func TestLayerViewportScaledTiles(t *testing.T) {
	// Adjacent layers stay adjacent at fractional scales.
	layers, height := Layout(96)
	scale := 1.25
	windowHeight := int(float64(height) * scale)

	var right int32
	for _, l := range layers[:2] {
		x, _, w, _ := l.Viewport(windowHeight, scale)
		if right != 0 && x != right {
			t.Errorf("%v starts at %d, want %d", l.Kind, x, right)
		}
		right = x + w
	}
	if want := int32(96 * scale); right != want {
		t.Errorf("picker row ends at %d, want %d", right, want)
	}
}
