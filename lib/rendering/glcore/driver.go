// Package glcore implements gpu.Driver on top of the OpenGL 4.1 core
// profile. Every method must be called from the thread owning the context.
package glcore

import (
	"fmt"

	"github.com/fosdem/shaderexample/lib/rendering/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

const f32 = 4

type Driver struct{}

func New() *Driver {
	return &Driver{}
}

func (d *Driver) Init() error {
	err := gl.Init()
	if err != nil {
		return fmt.Errorf("could not initialise OpenGL context: %w", err)
	}
	return nil
}

func (d *Driver) Version() string {
	vendor := gl.GoStr(gl.GetString(gl.VENDOR))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	version := gl.GoStr(gl.GetString(gl.VERSION))
	return fmt.Sprintf("%s / %s / %s", vendor, renderer, version)
}

func (d *Driver) CreateShader(stage gpu.ShaderStage) gpu.Shader {
	switch stage {
	case gpu.FragmentStage:
		return gpu.Shader(gl.CreateShader(gl.FRAGMENT_SHADER))
	default:
		return gpu.Shader(gl.CreateShader(gl.VERTEX_SHADER))
	}
}

func (d *Driver) ShaderSource(shader gpu.Shader, source string) {
	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(uint32(shader), 1, csources, &size)
	free()
}

func (d *Driver) CompileShader(shader gpu.Shader) {
	gl.CompileShader(uint32(shader))
}

func (d *Driver) DeleteShader(shader gpu.Shader) {
	gl.DeleteShader(uint32(shader))
}

func (d *Driver) CreateProgram() gpu.Program {
	return gpu.Program(gl.CreateProgram())
}

func (d *Driver) AttachShader(program gpu.Program, shader gpu.Shader) {
	gl.AttachShader(uint32(program), uint32(shader))
}

func (d *Driver) LinkProgram(program gpu.Program) {
	gl.LinkProgram(uint32(program))
}

func (d *Driver) ValidateProgram(program gpu.Program) {
	gl.ValidateProgram(uint32(program))
}

func (d *Driver) UseProgram(program gpu.Program) {
	gl.UseProgram(uint32(program))
}

// AttribLocation returns the location as GL reports it; a missing
// attribute comes back as -1 which wraps, like the C API does.
func (d *Driver) AttribLocation(program gpu.Program, name string) uint32 {
	return uint32(gl.GetAttribLocation(uint32(program), gl.Str(name+"\x00")))
}

func (d *Driver) GenVertexArray() gpu.VertexArray {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return gpu.VertexArray(vao)
}

func (d *Driver) BindVertexArray(vao gpu.VertexArray) {
	gl.BindVertexArray(uint32(vao))
}

func (d *Driver) GenBuffer() gpu.Buffer {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return gpu.Buffer(buf)
}

func (d *Driver) BindArrayBuffer(buffer gpu.Buffer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buffer))
}

func (d *Driver) StaticArrayBufferData(data []float32) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*f32, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Driver) EnableVertexAttribArray(location uint32) {
	gl.EnableVertexAttribArray(location)
}

func (d *Driver) FloatVertexAttribPointer(location uint32, layout gpu.AttribLayout) {
	gl.VertexAttribPointerWithOffset(location, layout.Components, gl.FLOAT, false, layout.Stride, uintptr(layout.Offset))
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Driver) ClearColorBuffer() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Driver) DrawArrays(mode gpu.Primitive, first, count int32) {
	switch mode {
	case gpu.Triangles:
		gl.DrawArrays(gl.TRIANGLES, first, count)
	}
}
