package programs

import "fmt"

// Kind is the role a program fulfils in the colour picker widget.
// It selects both the fragment shader and the uniforms uploaded by Paint.
type Kind int

const (
	Picker Kind = iota
	Picker2
	Hue
	Lightness
	Chroma
	Alpha
	FinalPrevious
	Final

	numKinds
)

var kindNames = [numKinds]string{
	Picker:        "picker",
	Picker2:       "picker2",
	Hue:           "hue",
	Lightness:     "lightness",
	Chroma:        "chroma",
	Alpha:         "alpha",
	FinalPrevious: "finalPrevious",
	Final:         "final",
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}
