package widget

import (
	"context"
	"image"
	"image/color"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glpicker/programs"
	"golang.org/x/image/draw"
)

// chunkSize is the number of columns rendered per goroutine.
const chunkSize = 50

// Image renders the widget on the CPU. Each layer is rendered at supersample
// times its size and scaled down into place; supersample below 1 is treated
// as 1. Areas between layers are transparent.
func (w *Widget) Image(ctx context.Context, supersample int) (*image.NRGBA, error) {
	if supersample < 1 {
		supersample = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w.width, w.height))
	for _, layer := range w.layers {
		src, err := renderLayer(ctx, layer.Kind, w.input, layer.Rect.Size(), supersample)
		if err != nil {
			return nil, err
		}

		if supersample == 1 {
			draw.Draw(dst, layer.Rect, src, image.Point{}, draw.Src)
		} else {
			draw.BiLinear.Scale(dst, layer.Rect, src, src.Bounds(), draw.Src, nil)
		}
	}

	return dst, nil
}

func renderLayer(
	ctx context.Context,
	kind programs.Kind,
	in programs.Input,
	size image.Point,
	supersample int,
) (*image.NRGBA, error) {
	width, height := size.X*supersample, size.Y*supersample
	in.Width *= float32(supersample)
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	var wg sync.WaitGroup
	for chunkMin := 0; chunkMin < width; chunkMin += chunkSize {
		chunkMax := min(chunkMin+chunkSize, width)

		wg.Add(1)
		go func() {
			defer wg.Done()
			for x := chunkMin; x < chunkMax; x++ {
				if ctx.Err() != nil {
					return
				}

				for y := 0; y < height; y++ {
					// GL window coordinates grow upwards.
					frag := mgl32.Vec2{float32(x) + 0.5, float32(height-y) - 0.5}
					uv := mgl32.Vec2{frag.X() / float32(width), frag.Y() / float32(height)}
					img.SetNRGBA(x, y, toNRGBA(kind.Pixel(in, uv, frag)))
				}
			}
		}()
	}

	wg.Wait()

	return img, ctx.Err()
}

func toNRGBA(c mgl32.Vec4) color.NRGBA {
	channel := func(v float32) uint8 {
		return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{
		R: channel(c.X()),
		G: channel(c.Y()),
		B: channel(c.Z()),
		A: channel(c.W()),
	}
}
