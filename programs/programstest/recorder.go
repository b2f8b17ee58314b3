// Package programstest provides a recording programs.Context for tests that
// exercise programs without a GPU.
package programstest

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glpicker/programs"
)

// Call is one recorded Context method call.
type Call struct {
	Method string
	Args   []interface{}
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Method, c.Args)
}

// Recorder implements programs.Context by recording every call and
// tracking which objects are alive. The zero value is ready to use and
// every operation succeeds.
type Recorder struct {
	Calls []Call

	// Compile, when set, decides whether a shader compiles. A non-empty
	// return value fails the compile and becomes the info log.
	Compile func(stage programs.ShaderStage, source string) (log string)
	// LinkLog, when set, fails every link with it as the info log.
	LinkLog string

	NoPrograms     bool
	NoShaders      bool
	NoVertexArrays bool

	next         uint32
	programs     map[uint32]bool
	shaders      map[uint32]*shader
	sources      map[uint32]*shader
	vertexArrays map[uint32]bool
	locations    map[int32]string
}

type shader struct {
	stage    programs.ShaderStage
	source   string
	compiled bool
	log      string
}

var _ programs.Context = (*Recorder)(nil)

func (r *Recorder) record(method string, args ...interface{}) {
	r.Calls = append(r.Calls, Call{Method: method, Args: args})
}

func (r *Recorder) handle() uint32 {
	r.next++
	return r.next
}

func (r *Recorder) init() {
	if r.programs == nil {
		r.programs = make(map[uint32]bool)
		r.shaders = make(map[uint32]*shader)
		r.sources = make(map[uint32]*shader)
		r.vertexArrays = make(map[uint32]bool)
		r.locations = make(map[int32]string)
	}
}

func (r *Recorder) CreateProgram() uint32 {
	r.init()
	r.record("CreateProgram")
	if r.NoPrograms {
		return 0
	}
	h := r.handle()
	r.programs[h] = true
	return h
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.init()
	r.record("DeleteProgram", program)
	delete(r.programs, program)
}

func (r *Recorder) LinkProgram(program uint32) {
	r.record("LinkProgram", program)
}

func (r *Recorder) ProgramLinkStatus(program uint32) bool {
	return r.LinkLog == ""
}

func (r *Recorder) ProgramInfoLog(program uint32) string {
	return r.LinkLog
}

func (r *Recorder) UseProgram(program uint32) {
	r.record("UseProgram", program)
}

func (r *Recorder) CreateShader(stage programs.ShaderStage) uint32 {
	r.init()
	r.record("CreateShader", stage)
	if r.NoShaders {
		return 0
	}
	h := r.handle()
	r.shaders[h] = &shader{stage: stage}
	r.sources[h] = r.shaders[h]
	return h
}

func (r *Recorder) DeleteShader(s uint32) {
	r.init()
	r.record("DeleteShader", s)
	delete(r.shaders, s)
}

func (r *Recorder) ShaderSource(s uint32, source string) {
	r.init()
	r.record("ShaderSource", s)
	if sh, ok := r.shaders[s]; ok {
		sh.source = source
	}
}

func (r *Recorder) CompileShader(s uint32) {
	r.init()
	r.record("CompileShader", s)
	sh, ok := r.shaders[s]
	if !ok {
		return
	}
	sh.compiled = true
	if r.Compile != nil {
		sh.log = r.Compile(sh.stage, sh.source)
		sh.compiled = sh.log == ""
	}
}

func (r *Recorder) ShaderCompileStatus(s uint32) bool {
	r.init()
	sh, ok := r.shaders[s]
	return ok && sh.compiled
}

func (r *Recorder) ShaderInfoLog(s uint32) string {
	r.init()
	if sh, ok := r.shaders[s]; ok {
		return sh.log
	}
	return ""
}

func (r *Recorder) AttachShader(program, s uint32) {
	r.record("AttachShader", program, s)
}

func (r *Recorder) DetachShader(program, s uint32) {
	r.record("DetachShader", program, s)
}

func (r *Recorder) CreateVertexArray() uint32 {
	r.init()
	r.record("CreateVertexArray")
	if r.NoVertexArrays {
		return 0
	}
	h := r.handle()
	r.vertexArrays[h] = true
	return h
}

func (r *Recorder) DeleteVertexArray(vertexArray uint32) {
	r.init()
	r.record("DeleteVertexArray", vertexArray)
	delete(r.vertexArrays, vertexArray)
}

func (r *Recorder) BindVertexArray(vertexArray uint32) {
	r.record("BindVertexArray", vertexArray)
}

// GetUniformLocation hands out a distinct location per call so uploads can
// be traced back to their names.
func (r *Recorder) GetUniformLocation(program uint32, name string) int32 {
	r.init()
	r.record("GetUniformLocation", program, name)
	loc := int32(len(r.locations))
	r.locations[loc] = name
	return loc
}

func (r *Recorder) Uniform1f(location int32, v float32) {
	r.record("Uniform1f", location, v)
}

func (r *Recorder) Uniform3f(location int32, v mgl32.Vec3) {
	r.record("Uniform3f", location, v)
}

func (r *Recorder) Uniform4f(location int32, v mgl32.Vec4) {
	r.record("Uniform4f", location, v)
}

func (r *Recorder) DrawArrays(mode programs.DrawMode, first, count int32) {
	r.record("DrawArrays", mode, first, count)
}

// Viewport records a viewport change. It lets the recorder stand in for
// surfaces that position each draw.
func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", x, y, width, height)
}

// Reset forgets recorded calls. Live objects are kept.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Count returns how many times method was called.
func (r *Recorder) Count(method string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Uniforms returns the uniform uploads in call order, with locations
// resolved to names.
func (r *Recorder) Uniforms() []programs.Uniform {
	r.init()
	var uniforms []programs.Uniform
	for _, c := range r.Calls {
		switch c.Method {
		case "Uniform1f", "Uniform3f", "Uniform4f":
			uniforms = append(uniforms, programs.Uniform{
				Name:  r.locations[c.Args[0].(int32)],
				Value: c.Args[1],
			})
		}
	}
	return uniforms
}

// Source returns the stage and source of a shader, deleted or not.
func (r *Recorder) Source(s uint32) (programs.ShaderStage, string, bool) {
	r.init()
	sh, ok := r.sources[s]
	if !ok {
		return 0, "", false
	}
	return sh.stage, sh.source, true
}

// Live returns the number of objects created and not yet deleted.
func (r *Recorder) Live() (programs, shaders, vertexArrays int) {
	return len(r.programs), len(r.shaders), len(r.vertexArrays)
}
