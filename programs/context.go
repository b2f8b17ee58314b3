package programs

import "github.com/go-gl/mathgl/mgl32"

// ShaderStage values are the OpenGL shader type enums.
type ShaderStage uint32

const (
	VertexStage   ShaderStage = 0x8B31
	FragmentStage ShaderStage = 0x8B30
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// DrawMode values are the OpenGL primitive enums.
type DrawMode uint32

const TriangleStrip DrawMode = 0x0005

// Context is the subset of a live OpenGL context used to build and draw
// programs. Handles are OpenGL object names; 0 means allocation failed.
//
// All methods must be called from the thread that owns the context.
type Context interface {
	CreateProgram() uint32
	DeleteProgram(program uint32)
	LinkProgram(program uint32)
	ProgramLinkStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)

	CreateShader(stage ShaderStage) uint32
	DeleteShader(shader uint32)
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)

	CreateVertexArray() uint32
	DeleteVertexArray(vertexArray uint32)
	BindVertexArray(vertexArray uint32)

	GetUniformLocation(program uint32, name string) int32
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, v mgl32.Vec3)
	Uniform4f(location int32, v mgl32.Vec4)

	DrawArrays(mode DrawMode, first, count int32)
}
