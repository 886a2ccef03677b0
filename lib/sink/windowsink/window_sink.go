package windowsink

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/shaderexample/lib/app"
	"github.com/fosdem/shaderexample/lib/config"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Platform is the GLFW implementation of app.Platform.
type Platform struct{}

func (Platform) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	return nil
}

func (Platform) Terminate() {
	glfw.Terminate()
}

func (Platform) CreateWindow(cfg *config.WindowCfg) (app.Window, error) {
	w, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return w, nil
}

type WindowSink struct {
	Window *glfw.Window
	log    *slog.Logger
}

func New(cfg *config.WindowCfg) (*WindowSink, error) {
	w := &WindowSink{log: slog.With("module", "windowsink")}
	w.log.Debug(fmt.Sprintf("Initializing %dx%d window %q", cfg.Width, cfg.Height, cfg.Title))

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	window.SetCloseCallback(func(*glfw.Window) {
		w.log.Info("window close requested")
	})
	w.Window = window

	return w, nil
}

func (w *WindowSink) MakeContextCurrent() {
	w.Window.MakeContextCurrent()
}

func (w *WindowSink) ShouldClose() bool {
	return w.Window.ShouldClose()
}

func (w *WindowSink) SwapBuffers() {
	w.Window.SwapBuffers()
}

func (w *WindowSink) PollEvents() {
	glfw.PollEvents()
}

func (w *WindowSink) RequestClose() {
	w.Window.SetShouldClose(true)
	glfw.PostEmptyEvent()
}
