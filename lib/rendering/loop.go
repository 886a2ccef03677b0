package rendering

import (
	"time"

	"github.com/fosdem/shaderexample/lib/metrics"
	"github.com/fosdem/shaderexample/lib/rendering/gpu"
	"github.com/fosdem/shaderexample/lib/utils"
)

// Window is the part of a window the render loop needs.
type Window interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
}

type Loop struct {
	Driver gpu.Driver
	Window Window
	Vars   *GLVars

	// OnFrame, if set, is called after every presented frame with the
	// time since the previous one.
	OnFrame func(dt time.Duration)
}

// Run draws frames until the window's close flag is set and returns
// the number of frames presented.
func (l *Loop) Run() uint64 {
	var deltaTimer utils.DeltaTimer
	var frames uint64

	for !l.Window.ShouldClose() {
		l.Vars.DrawFrame(l.Driver)
		l.Window.SwapBuffers()
		l.Window.PollEvents()

		frames++
		dt := deltaTimer.Next()
		metrics.FramesDrawn.Inc()
		metrics.VerticesSubmitted.Add(TriangleVertexCount)
		if frames > 1 {
			metrics.FrameSeconds.Observe(dt.Seconds())
		}
		if l.OnFrame != nil {
			l.OnFrame(dt)
		}
	}
	return frames
}
