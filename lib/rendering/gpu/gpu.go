// Package gpu holds the narrow set of graphics driver calls the renderer
// issues. The real implementation lives in glcore; tests use gputest.
package gpu

type (
	Program     uint32
	Shader      uint32
	Buffer      uint32
	VertexArray uint32
)

type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

type Primitive int

const (
	Triangles Primitive = iota
)

// AttribLayout describes how one float attribute is laid out in a buffer.
// Stride and Offset are in bytes.
type AttribLayout struct {
	Components int32
	Stride     int32
	Offset     int
}

type Driver interface {
	Init() error
	Version() string

	CreateShader(stage ShaderStage) Shader
	ShaderSource(shader Shader, source string)
	CompileShader(shader Shader)
	DeleteShader(shader Shader)

	CreateProgram() Program
	AttachShader(program Program, shader Shader)
	LinkProgram(program Program)
	ValidateProgram(program Program)
	UseProgram(program Program)
	AttribLocation(program Program, name string) uint32

	GenVertexArray() VertexArray
	BindVertexArray(vao VertexArray)
	GenBuffer() Buffer
	BindArrayBuffer(buffer Buffer)
	StaticArrayBufferData(data []float32)
	EnableVertexAttribArray(location uint32)
	FloatVertexAttribPointer(location uint32, layout AttribLayout)

	ClearColor(r, g, b, a float32)
	ClearColorBuffer()
	DrawArrays(mode Primitive, first, count int32)
}
