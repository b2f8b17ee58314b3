package programs

import (
	_ "embed"
	"fmt"
)

//go:embed shaders/quad.vert
var quadVertexShader string

//go:embed shaders/functions.glsl
var functionsShader string

var (
	//go:embed shaders/picker.frag
	pickerFragment string
	//go:embed shaders/picker2.frag
	picker2Fragment string
	//go:embed shaders/hue.frag
	hueFragment string
	//go:embed shaders/lightness.frag
	lightnessFragment string
	//go:embed shaders/chroma.frag
	chromaFragment string
	//go:embed shaders/alpha.frag
	alphaFragment string
	//go:embed shaders/final.frag
	finalFragment string
)

// VertexShader returns the vertex shader shared by every kind.
func VertexShader() string {
	return quadVertexShader
}

// FragmentShader returns the shared function library followed by the
// fragment body of kind. Final and FinalPrevious share a body.
func FragmentShader(kind Kind) string {
	var body string
	switch kind {
	case Picker:
		body = pickerFragment
	case Picker2:
		body = picker2Fragment
	case Hue:
		body = hueFragment
	case Lightness:
		body = lightnessFragment
	case Chroma:
		body = chromaFragment
	case Alpha:
		body = alphaFragment
	case Final, FinalPrevious:
		body = finalFragment
	default:
		panic(fmt.Sprintf("programs: no fragment shader for %v", kind))
	}
	return functionsShader + body
}
