// Package glcontext implements programs.Context on an OpenGL 4.6 core
// context with go-gl.
package glcontext

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glpicker/programs"
)

// Context issues GL calls on the context current on the calling thread.
type Context struct{}

var _ programs.Context = (*Context)(nil)

// Init loads the GL function pointers for the current context and sets up
// blending and debug output. The context must already be current.
func Init(debug bool) (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init: %w", err)
	}

	programs.Logger().Info("OpenGL initialised",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
	)

	gl.DebugMessageCallback(debugMessage, nil)
	if debug {
		gl.Enable(gl.DEBUG_OUTPUT)
		gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return &Context{}, nil
}

// Clear fills the whole framebuffer with c, ignoring the last viewport.
func (*Context) Clear(c mgl32.Vec4) {
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Viewport limits drawing to the rectangle, in GL window coordinates.
func (*Context) Viewport(x, y, width, height int32) {
	gl.Enable(gl.SCISSOR_TEST)
	gl.Viewport(x, y, width, height)
	gl.Scissor(x, y, width, height)
}

func (*Context) CreateProgram() uint32 { return gl.CreateProgram() }

func (*Context) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (*Context) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (*Context) ProgramLinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (*Context) ProgramInfoLog(program uint32) string {
	var l int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &l)

	log := strings.Repeat("\x00", int(l+1))
	gl.GetProgramInfoLog(program, l, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*Context) UseProgram(program uint32) { gl.UseProgram(program) }

func (*Context) CreateShader(stage programs.ShaderStage) uint32 {
	return gl.CreateShader(uint32(stage))
}

func (*Context) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (*Context) ShaderSource(shader uint32, source string) {
	source += "\x00"
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	gl.ShaderSource(shader, 1, cstring, nil)
}

func (*Context) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (*Context) ShaderCompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (*Context) ShaderInfoLog(shader uint32) string {
	var l int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

	log := strings.Repeat("\x00", int(l+1))
	gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*Context) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (*Context) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (*Context) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (*Context) DeleteVertexArray(vertexArray uint32) {
	gl.DeleteVertexArrays(1, &vertexArray)
}

func (*Context) BindVertexArray(vertexArray uint32) { gl.BindVertexArray(vertexArray) }

func (*Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (*Context) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (*Context) Uniform3f(location int32, v mgl32.Vec3) { gl.Uniform3fv(location, 1, &v[0]) }

func (*Context) Uniform4f(location int32, v mgl32.Vec4) { gl.Uniform4fv(location, 1, &v[0]) }

func (*Context) DrawArrays(mode programs.DrawMode, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}
