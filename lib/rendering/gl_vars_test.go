package rendering

import (
	"testing"

	"github.com/fosdem/shaderexample/lib/rendering/gpu"
	"github.com/fosdem/shaderexample/lib/rendering/gpu/gputest"
	"github.com/fosdem/shaderexample/lib/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateUploadsLiteralBuffers(t *testing.T) {
	rec := gputest.NewRecorder()
	g := NewGLVars(utils.Colour{})
	g.Allocate(rec)

	assert.Equal(t, []float32{
		-0.5, -0.5,
		0.0, 0.5,
		0.5, -0.5,
	}, rec.BufferData[g.VertexBuffer])
	assert.Equal(t, []float32{
		0.686, 0.0, 1.0,
		0.609, 0.115, 0.436,
		0.327, 0.483, 0.844,
	}, rec.BufferData[g.ColourBuffer])
	assert.NotEqual(t, g.VertexBuffer, g.ColourBuffer)
}

func TestAllocateOrder(t *testing.T) {
	rec := gputest.NewRecorder()
	g := NewGLVars(utils.Colour{})
	g.Allocate(rec)

	require.Len(t, rec.Calls, 8)
	assert.Equal(t, "GenVertexArray()", rec.Calls[0])
	assert.Equal(t, "BindVertexArray(1)", rec.Calls[1])
	assert.Equal(t, "StaticArrayBufferData(2, 9 floats)", rec.Calls[4])
	assert.Equal(t, "StaticArrayBufferData(3, 6 floats)", rec.Calls[7])
}

func TestStartBindsAttributes(t *testing.T) {
	rec := gputest.NewRecorder()
	rec.Attribs = map[string]uint32{"position": 4, "vertexColor": 7}
	g := NewGLVars(utils.Colour{R: 0.5, A: 1})
	g.Allocate(rec)
	g.Start(rec, gpu.Program(42))

	assert.Equal(t, uint32(4), g.PositionLoc)
	assert.Equal(t, uint32(7), g.VertexColorLoc)
	assert.True(t, rec.Enabled[4])
	assert.True(t, rec.Enabled[7])

	assert.Equal(t, g.VertexBuffer, rec.AttribBuffers[4])
	assert.Equal(t, gpu.AttribLayout{Components: 2, Stride: 8}, rec.Layouts[4])
	assert.Equal(t, g.ColourBuffer, rec.AttribBuffers[7])
	assert.Equal(t, gpu.AttribLayout{Components: 3, Stride: 12}, rec.Layouts[7])

	assert.Equal(t, gpu.Program(42), rec.InUse)
	assert.Equal(t, "UseProgram(42)", rec.Calls[len(rec.Calls)-1])
	assert.Contains(t, rec.Calls, "ClearColor(0.5, 0, 0, 1)")
}

func TestDrawFrameIssuesThreeVertices(t *testing.T) {
	rec := gputest.NewRecorder()
	g := NewGLVars(utils.Colour{})

	g.DrawFrame(rec)

	assert.Equal(t, 1, rec.Clears)
	require.Len(t, rec.Draws, 1)
	assert.Equal(t, gputest.DrawCall{Mode: gpu.Triangles, First: 0, Count: 3}, rec.Draws[0])
	assert.Equal(t, []string{"ClearColorBuffer()", "DrawArrays(0, 0, 3)"}, rec.Calls)
}
