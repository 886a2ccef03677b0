package shaders

import (
	"fmt"

	"github.com/fosdem/shaderexample/lib/metrics"
	"github.com/fosdem/shaderexample/lib/rendering/gpu"
)

// BuildGLProgram compiles the vertex and fragment shader found at the
// given paths and links them into a new program. Compile and link status
// are not inspected: bad source yields a program that draws nothing.
func BuildGLProgram(drv gpu.Driver, vertexPath, fragmentPath string) gpu.Program {
	shaderer := NewShaderer(vertexPath, fragmentPath)

	vertexShader := shaderer.GetShaderSource(gpu.VertexStage)
	fragmentShader := shaderer.GetShaderSource(gpu.FragmentStage)

	program := newProgram(drv, vertexShader, fragmentShader)
	metrics.ProgramsBuilt.Inc()
	shaderer.log.Info(fmt.Sprintf("built shader program %d from %s and %s", program, vertexPath, fragmentPath))
	return program
}

func newProgram(drv gpu.Driver, vertexShaderSource, fragmentShaderSource string) gpu.Program {
	program := drv.CreateProgram()

	vertexShader := compileShader(drv, vertexShaderSource, gpu.VertexStage)
	fragmentShader := compileShader(drv, fragmentShaderSource, gpu.FragmentStage)

	drv.AttachShader(program, vertexShader)
	drv.AttachShader(program, fragmentShader)
	drv.LinkProgram(program)
	drv.ValidateProgram(program)

	// The program keeps the compiled stages alive after linking.
	drv.DeleteShader(vertexShader)
	drv.DeleteShader(fragmentShader)

	return program
}

func compileShader(drv gpu.Driver, source string, stage gpu.ShaderStage) gpu.Shader {
	shader := drv.CreateShader(stage)
	drv.ShaderSource(shader, source)
	drv.CompileShader(shader)
	return shader
}
