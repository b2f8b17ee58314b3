// Package programs compiles and draws the shader programs that render the
// layers of an OkLCh colour picker: the two picker areas, the hue, lightness,
// chroma and alpha strips, and the current and previous colour swatches.
//
// Each Program owns its GL objects. They are released by Destroy, or by
// Set.Close and With for scoped use; nothing is released implicitly.
// Construction failures are programming errors and panic.
package programs

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glpicker/colour"
)

// Program is one compiled kind with the empty vertex array its quad is
// drawn from.
type Program struct {
	kind        Kind
	program     uint32
	vertexArray uint32
	locations   map[string]int32
}

// New compiles and links the program for kind.
//
// New panics if a GL object cannot be allocated or a shader fails to compile
// or link; the panic value is an error carrying the GL info log.
func New(ctx Context, kind Kind) *Program {
	if !kind.Valid() {
		panic(fmt.Errorf("programs: invalid kind %v", kind))
	}
	return newFromSources(ctx, kind, VertexShader(), FragmentShader(kind))
}

func newFromSources(ctx Context, kind Kind, vertexSource, fragmentSource string) *Program {
	program := ctx.CreateProgram()
	if program == 0 {
		fatal(kind, errors.New("cannot create program"))
	}

	sources := [...]struct {
		stage  ShaderStage
		source string
	}{
		{VertexStage, vertexSource},
		{FragmentStage, fragmentSource},
	}

	shaders := make([]uint32, 0, len(sources))
	releaseShaders := func() {
		for _, shader := range shaders {
			ctx.DetachShader(program, shader)
			ctx.DeleteShader(shader)
		}
		shaders = shaders[:0]
	}
	// Nothing created here outlives a failed construction.
	fail := func(err error) {
		releaseShaders()
		ctx.DeleteProgram(program)
		fatal(kind, err)
	}

	for _, s := range sources {
		shader, err := compileShader(ctx, s.stage, s.source)
		if err != nil {
			fail(err)
		}
		ctx.AttachShader(program, shader)
		shaders = append(shaders, shader)
	}

	ctx.LinkProgram(program)
	if !ctx.ProgramLinkStatus(program) {
		fail(fmt.Errorf("failed to link program: %v", ctx.ProgramInfoLog(program)))
	}

	releaseShaders()

	vertexArray := ctx.CreateVertexArray()
	if vertexArray == 0 {
		fail(errors.New("cannot create vertex array"))
	}

	p := &Program{
		kind:        kind,
		program:     program,
		vertexArray: vertexArray,
		locations:   make(map[string]int32),
	}
	for _, name := range Names(kind) {
		p.locations[name] = ctx.GetUniformLocation(program, name)
	}

	Logger().Debug("program created",
		"kind", kind,
		"program", program,
		"vertexArray", vertexArray,
	)
	return p
}

func compileShader(ctx Context, stage ShaderStage, source string) (uint32, error) {
	shader := ctx.CreateShader(stage)
	if shader == 0 {
		return 0, fmt.Errorf("cannot create %v shader", stage)
	}

	ctx.ShaderSource(shader, source)
	ctx.CompileShader(shader)

	if !ctx.ShaderCompileStatus(shader) {
		log := ctx.ShaderInfoLog(shader)
		ctx.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %v shader: %v", stage, log)
	}

	return shader, nil
}

func fatal(kind Kind, err error) {
	err = fmt.Errorf("programs: %v: %w", kind, err)
	Logger().Error("shader program construction failed", "kind", kind, "err", err)
	panic(err)
}

// Kind returns the kind p was created for.
func (p *Program) Kind() Kind {
	return p.kind
}

// Handles returns the GL program and vertex array names owned by p.
func (p *Program) Handles() (program, vertexArray uint32) {
	return p.program, p.vertexArray
}

// Destroy releases the program and vertex array. p must not be used after.
func (p *Program) Destroy(ctx Context) {
	ctx.DeleteProgram(p.program)
	ctx.DeleteVertexArray(p.vertexArray)
	Logger().Debug("program destroyed", "kind", p.kind, "program", p.program)
}

// Paint draws the full quad with p's uniforms taken from the colour, the
// fallback colours and the widget width.
func (p *Program) Paint(
	ctx Context,
	col colour.Oklcha,
	fallback mgl32.Vec4,
	previousFallback mgl32.Vec4,
	width float32,
) {
	p.paint(ctx, Input{
		Colour:           col,
		Fallback:         fallback,
		PreviousFallback: previousFallback,
		Width:            width,
	})
}

func (p *Program) paint(ctx Context, in Input) {
	ctx.UseProgram(p.program)
	for _, u := range Plan(p.kind, in) {
		upload(ctx, p.locations[u.Name], u)
	}
	ctx.BindVertexArray(p.vertexArray)
	ctx.DrawArrays(TriangleStrip, 0, 4)
}
