package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesDrawn = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shaderexample_frames_drawn_total",
		Help: "Total number of frames drawn and presented",
	})
	VerticesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shaderexample_vertices_submitted_total",
		Help: "Total number of vertices submitted in draw calls",
	})
	FrameSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "shaderexample_frame_seconds",
		Help:    "Time between consecutive presented frames",
		Buckets: []float64{0.001, 0.004, 0.008, 0.016, 0.033, 0.066, 0.1, 0.25, 1},
	})
	ProgramsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shaderexample_shader_programs_built_total",
		Help: "Total number of shader programs compiled and linked",
	})
)

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
