// Package gputest provides a gpu.Driver that records calls instead of
// talking to a graphics driver.
package gputest

import (
	"fmt"

	"github.com/fosdem/shaderexample/lib/rendering/gpu"
)

type DrawCall struct {
	Mode  gpu.Primitive
	First int32
	Count int32
}

type Recorder struct {
	// InitErr is returned from Init when set.
	InitErr error

	// Calls holds one entry per driver call, e.g. "CompileShader(1)".
	Calls []string

	Sources    map[gpu.Shader]string
	Stages     map[gpu.Shader]gpu.ShaderStage
	Deleted    map[gpu.Shader]bool
	Attached   map[gpu.Program][]gpu.Shader
	BufferData map[gpu.Buffer][]float32
	Attribs    map[string]uint32
	Layouts    map[uint32]gpu.AttribLayout
	// AttribBuffers tracks which buffer was bound when a location's
	// pointer was configured.
	AttribBuffers map[uint32]gpu.Buffer
	Enabled       map[uint32]bool
	Draws         []DrawCall
	InUse         gpu.Program
	Clears        int

	nextID      uint32
	boundBuffer gpu.Buffer
}

func NewRecorder() *Recorder {
	return &Recorder{
		Sources:       map[gpu.Shader]string{},
		Stages:        map[gpu.Shader]gpu.ShaderStage{},
		Deleted:       map[gpu.Shader]bool{},
		Attached:      map[gpu.Program][]gpu.Shader{},
		BufferData:    map[gpu.Buffer][]float32{},
		Attribs:       map[string]uint32{"position": 0, "vertexColor": 1},
		Layouts:       map[uint32]gpu.AttribLayout{},
		AttribBuffers: map[uint32]gpu.Buffer{},
		Enabled:       map[uint32]bool{},
	}
}

func (r *Recorder) record(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) id() uint32 {
	r.nextID++
	return r.nextID
}

func (r *Recorder) Init() error {
	r.record("Init()")
	return r.InitErr
}

func (r *Recorder) Version() string {
	return "recorder"
}

func (r *Recorder) CreateShader(stage gpu.ShaderStage) gpu.Shader {
	s := gpu.Shader(r.id())
	r.Stages[s] = stage
	r.record("CreateShader(%s)", stage)
	return s
}

func (r *Recorder) ShaderSource(shader gpu.Shader, source string) {
	r.Sources[shader] = source
	r.record("ShaderSource(%d)", shader)
}

func (r *Recorder) CompileShader(shader gpu.Shader) {
	r.record("CompileShader(%d)", shader)
}

func (r *Recorder) DeleteShader(shader gpu.Shader) {
	r.Deleted[shader] = true
	r.record("DeleteShader(%d)", shader)
}

func (r *Recorder) CreateProgram() gpu.Program {
	p := gpu.Program(r.id())
	r.record("CreateProgram()")
	return p
}

func (r *Recorder) AttachShader(program gpu.Program, shader gpu.Shader) {
	r.Attached[program] = append(r.Attached[program], shader)
	r.record("AttachShader(%d, %d)", program, shader)
}

func (r *Recorder) LinkProgram(program gpu.Program) {
	r.record("LinkProgram(%d)", program)
}

func (r *Recorder) ValidateProgram(program gpu.Program) {
	r.record("ValidateProgram(%d)", program)
}

func (r *Recorder) UseProgram(program gpu.Program) {
	r.InUse = program
	r.record("UseProgram(%d)", program)
}

func (r *Recorder) AttribLocation(program gpu.Program, name string) uint32 {
	r.record("AttribLocation(%d, %s)", program, name)
	loc, ok := r.Attribs[name]
	if !ok {
		return ^uint32(0)
	}
	return loc
}

func (r *Recorder) GenVertexArray() gpu.VertexArray {
	r.record("GenVertexArray()")
	return gpu.VertexArray(r.id())
}

func (r *Recorder) BindVertexArray(vao gpu.VertexArray) {
	r.record("BindVertexArray(%d)", vao)
}

func (r *Recorder) GenBuffer() gpu.Buffer {
	r.record("GenBuffer()")
	return gpu.Buffer(r.id())
}

func (r *Recorder) BindArrayBuffer(buffer gpu.Buffer) {
	r.boundBuffer = buffer
	r.record("BindArrayBuffer(%d)", buffer)
}

func (r *Recorder) StaticArrayBufferData(data []float32) {
	r.BufferData[r.boundBuffer] = append([]float32(nil), data...)
	r.record("StaticArrayBufferData(%d, %d floats)", r.boundBuffer, len(data))
}

func (r *Recorder) EnableVertexAttribArray(location uint32) {
	r.Enabled[location] = true
	r.record("EnableVertexAttribArray(%d)", location)
}

func (r *Recorder) FloatVertexAttribPointer(location uint32, layout gpu.AttribLayout) {
	r.Layouts[location] = layout
	r.AttribBuffers[location] = r.boundBuffer
	r.record("FloatVertexAttribPointer(%d)", location)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor(%g, %g, %g, %g)", red, green, blue, alpha)
}

func (r *Recorder) ClearColorBuffer() {
	r.Clears++
	r.record("ClearColorBuffer()")
}

func (r *Recorder) DrawArrays(mode gpu.Primitive, first, count int32) {
	r.Draws = append(r.Draws, DrawCall{Mode: mode, First: first, Count: count})
	r.record("DrawArrays(%d, %d, %d)", mode, first, count)
}

var _ gpu.Driver = (*Recorder)(nil)
