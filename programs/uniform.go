package programs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glpicker/colour"
)

// Input is everything a program reads when painting.
type Input struct {
	Colour           colour.Oklcha
	Fallback         mgl32.Vec4
	PreviousFallback mgl32.Vec4

	// Width is the widget width in pixels, uploaded to every kind.
	Width float32
}

// Uniform is a named value uploaded before a draw.
// Value is a float32, mgl32.Vec3 or mgl32.Vec4.
type Uniform struct {
	Name  string
	Value interface{}
}

// Plan returns the uniforms kind uploads for in, in upload order.
// width is always first.
func Plan(kind Kind, in Input) []Uniform {
	uniforms := []Uniform{{Name: "width", Value: in.Width}}

	switch kind {
	case Picker:
		uniforms = append(uniforms, Uniform{"hue", in.Colour.Hue})
	case Picker2:
		uniforms = append(uniforms, Uniform{"lightness", in.Colour.Lightness})
	case Hue:
	case Lightness:
		uniforms = append(uniforms,
			Uniform{"hue", in.Colour.Hue},
			Uniform{"chroma", in.Colour.Chroma},
		)
	case Chroma:
		uniforms = append(uniforms,
			Uniform{"hue", in.Colour.Hue},
			Uniform{"lightness", in.Colour.Lightness},
		)
	case Alpha:
		uniforms = append(uniforms, Uniform{"color", in.Fallback.Vec3()})
	case Final:
		uniforms = append(uniforms, Uniform{"color", in.Fallback})
	case FinalPrevious:
		uniforms = append(uniforms, Uniform{"color", in.PreviousFallback})
	}

	return uniforms
}

// Names returns the uniform names kind uploads.
func Names(kind Kind) []string {
	plan := Plan(kind, Input{})
	names := make([]string, len(plan))
	for i, u := range plan {
		names[i] = u.Name
	}
	return names
}

func upload(ctx Context, location int32, u Uniform) {
	switch v := u.Value.(type) {
	case float32:
		ctx.Uniform1f(location, v)
	case mgl32.Vec3:
		ctx.Uniform3f(location, v)
	case mgl32.Vec4:
		ctx.Uniform4f(location, v)
	default:
		Logger().Warn("unsupported uniform type", "name", u.Name, "type", fmt.Sprintf("%T", u.Value))
	}
}
