package programs_test

import (
	"strings"
	"testing"

	"github.com/stewi1014/glpicker/programs"
	"github.com/stewi1014/glpicker/programs/programstest"
)

func TestNewSetAllKinds(t *testing.T) {
	r := &programstest.Recorder{}
	s := programs.NewSet(r)

	for _, kind := range programs.Kinds() {
		p := s.Get(kind)
		if p == nil {
			t.Fatalf("Get(%v) = nil", kind)
		}
		if p.Kind() != kind {
			t.Errorf("Get(%v).Kind() = %v", kind, p.Kind())
		}
	}

	if liveProgs, _, liveArrays := r.Live(); liveProgs != 8 || liveArrays != 8 {
		t.Errorf("Live() programs, vertex arrays = %v, %v, want 8, 8", liveProgs, liveArrays)
	}

	s.Close(r)
	if got := r.Count("DeleteProgram"); got != 8 {
		t.Errorf("DeleteProgram called %v times, want 8", got)
	}
	if got := r.Count("DeleteVertexArray"); got != 8 {
		t.Errorf("DeleteVertexArray called %v times, want 8", got)
	}
	if liveProgs, liveShaders, liveArrays := r.Live(); liveProgs+liveShaders+liveArrays != 0 {
		t.Errorf("Live() = %v, %v, %v after Close, want nothing", liveProgs, liveShaders, liveArrays)
	}

	r.Reset()
	s.Close(r)
	if len(r.Calls) != 0 {
		t.Errorf("second Close made calls %v", r.Calls)
	}
}

func TestNewSetSubset(t *testing.T) {
	r := &programstest.Recorder{}
	s := programs.NewSet(r, programs.Hue, programs.Final, programs.Hue)
	defer s.Close(r)

	if got := r.Count("CreateProgram"); got != 2 {
		t.Errorf("CreateProgram called %v times, want 2", got)
	}
	if s.Get(programs.Picker) != nil {
		t.Error("Get(Picker) != nil for a set without it")
	}
	if s.Get(programs.Kind(-1)) != nil {
		t.Error("Get(Kind(-1)) != nil")
	}

	r.Reset()
	s.Paint(r, programs.Picker, programs.Input{})
	if len(r.Calls) != 0 {
		t.Errorf("Paint of a missing kind made calls %v", r.Calls)
	}

	s.Paint(r, programs.Final, programs.Input{Fallback: testFallback, Width: testWidth})
	if got := r.Count("DrawArrays"); got != 1 {
		t.Errorf("DrawArrays called %v times, want 1", got)
	}
}

func TestNewSetPanicReleases(t *testing.T) {
	r := &programstest.Recorder{
		Compile: func(stage programs.ShaderStage, source string) string {
			if strings.Contains(source, "uniform vec3 color;") {
				return "alpha refused"
			}
			return ""
		},
	}

	msg := mustPanic(t, func() { programs.NewSet(r) })
	if !strings.Contains(msg, "alpha refused") {
		t.Errorf("panic = %q, want the compile log", msg)
	}

	// Picker through Chroma from Close, then Alpha's own half-built program.
	if got := r.Count("DeleteProgram"); got != 6 {
		t.Errorf("DeleteProgram called %v times, want 6", got)
	}
	if p, s, va := r.Live(); p != 0 || s != 0 || va != 0 {
		t.Errorf("live after panic = %v programs, %v shaders, %v vertex arrays, want none", p, s, va)
	}
}

func TestWith(t *testing.T) {
	r := &programstest.Recorder{}
	var painted bool
	programs.With(r, programs.Lightness, func(p *programs.Program) {
		p.Paint(r, testColour, testFallback, testPrevious, testWidth)
		painted = true
	})

	if !painted {
		t.Error("With did not call f")
	}
	if liveProgs, _, liveArrays := r.Live(); liveProgs+liveArrays != 0 {
		t.Errorf("Live() programs, vertex arrays = %v, %v after With, want 0, 0", liveProgs, liveArrays)
	}
}

func TestWithPanic(t *testing.T) {
	r := &programstest.Recorder{}
	msg := mustPanic(t, func() {
		programs.With(r, programs.Final, func(p *programs.Program) {
			panic("boom")
		})
	})

	if msg != "boom" {
		t.Errorf("panic = %q, want boom", msg)
	}
	if liveProgs, _, liveArrays := r.Live(); liveProgs+liveArrays != 0 {
		t.Errorf("Live() programs, vertex arrays = %v, %v after panic, want 0, 0", liveProgs, liveArrays)
	}
}
