package widget

import (
	"context"
	"fmt"
	"image/png"
	"os"
)

// SavePNG renders the widget with Image and writes it to name. The file is
// removed if rendering or encoding fails.
func (w *Widget) SavePNG(ctx context.Context, name string, supersample int) (err error) {
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %v: %w", name, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %v: %w", name, cerr)
		}
		if err != nil {
			os.Remove(name)
		}
	}()

	img, err := w.Image(ctx, supersample)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode %v: %w", name, err)
	}

	return nil
}
