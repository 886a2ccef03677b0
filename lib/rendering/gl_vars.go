package rendering

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/shaderexample/lib/rendering/gpu"
	"github.com/fosdem/shaderexample/lib/utils"
	"github.com/go-gl/mathgl/mgl32"
)

const f32 = 4

const (
	PositionAttrib = "position"
	ColourAttrib   = "vertexColor"

	TriangleVertexCount = 3
)

var TrianglePositions = [TriangleVertexCount]mgl32.Vec2{
	{-0.5, -0.5},
	{0.0, 0.5},
	{0.5, -0.5},
}

var TriangleColours = [TriangleVertexCount]mgl32.Vec3{
	{0.686, 0.0, 1.0},
	{0.609, 0.115, 0.436},
	{0.327, 0.483, 0.844},
}

// GLVars holds the GL objects for the triangle. Nothing in it changes
// after Start, and nothing is ever released.
type GLVars struct {
	Positions []float32
	Colours   []float32

	Program  gpu.Program
	BGColour utils.Colour

	// GL IDs
	VAO            gpu.VertexArray
	VertexBuffer   gpu.Buffer
	ColourBuffer   gpu.Buffer
	PositionLoc    uint32
	VertexColorLoc uint32

	log *slog.Logger
}

func NewGLVars(bgColour utils.Colour) *GLVars {
	g := &GLVars{}

	g.Positions = flattenVec2(TrianglePositions[:])
	g.Colours = flattenVec3(TriangleColours[:])
	g.BGColour = bgColour
	g.log = slog.With("module", "rendering")

	return g
}

// Allocate creates the vertex array and uploads both buffers. It runs
// before the shader program exists.
func (g *GLVars) Allocate(drv gpu.Driver) {
	g.VAO = drv.GenVertexArray()
	drv.BindVertexArray(g.VAO)

	g.ColourBuffer = drv.GenBuffer()
	drv.BindArrayBuffer(g.ColourBuffer)
	drv.StaticArrayBufferData(g.Colours)

	g.VertexBuffer = drv.GenBuffer()
	drv.BindArrayBuffer(g.VertexBuffer)
	drv.StaticArrayBufferData(g.Positions)

	g.log.Debug(fmt.Sprintf("uploaded %d position and %d colour floats", len(g.Positions), len(g.Colours)))
}

// Start wires the attributes of program to the buffers and makes it the
// active program.
func (g *GLVars) Start(drv gpu.Driver, program gpu.Program) {
	g.Program = program

	g.PositionLoc = drv.AttribLocation(program, PositionAttrib)
	drv.EnableVertexAttribArray(g.PositionLoc)
	drv.BindArrayBuffer(g.VertexBuffer)
	drv.FloatVertexAttribPointer(g.PositionLoc, gpu.AttribLayout{Components: 2, Stride: 2 * f32})

	g.VertexColorLoc = drv.AttribLocation(program, ColourAttrib)
	drv.EnableVertexAttribArray(g.VertexColorLoc)
	drv.BindArrayBuffer(g.ColourBuffer)
	drv.FloatVertexAttribPointer(g.VertexColorLoc, gpu.AttribLayout{Components: 3, Stride: 3 * f32})

	drv.ClearColor(g.BGColour.R, g.BGColour.G, g.BGColour.B, g.BGColour.A)
	drv.UseProgram(program)
}

func (g *GLVars) DrawFrame(drv gpu.Driver) {
	drv.ClearColorBuffer()
	drv.DrawArrays(gpu.Triangles, 0, TriangleVertexCount)
}

func flattenVec2(vs []mgl32.Vec2) []float32 {
	out := make([]float32, 0, len(vs)*2)
	for _, v := range vs {
		out = append(out, v.X(), v.Y())
	}
	return out
}

func flattenVec3(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v.X(), v.Y(), v.Z())
	}
	return out
}
