// Package app runs the demo from window creation to window close.
package app

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/shaderexample/lib/api"
	"github.com/fosdem/shaderexample/lib/config"
	"github.com/fosdem/shaderexample/lib/rendering"
	"github.com/fosdem/shaderexample/lib/rendering/gpu"
	"github.com/fosdem/shaderexample/lib/rendering/shaders"
	"github.com/fosdem/shaderexample/lib/stats"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

// GLInitFailedMessage is printed when the GL function pointers could not
// be loaded. Startup continues regardless.
const GLInitFailedMessage = "Error!"

type Window interface {
	rendering.Window
	MakeContextCurrent()
	// RequestClose sets the close flag; safe from any goroutine.
	RequestClose()
}

type Platform interface {
	Init() error
	CreateWindow(cfg *config.WindowCfg) (Window, error)
	Terminate()
}

// Run must be called on the main OS thread. It returns the process exit
// status.
func Run(cfg *config.Config, platform Platform, drv gpu.Driver) int {
	log := slog.With("module", "app")

	if err := platform.Init(); err != nil {
		log.Error(fmt.Sprintf("could not initialise windowing: %s", err))
		return ExitFailure
	}
	defer platform.Terminate()

	win, err := platform.CreateWindow(cfg.Window)
	if err != nil {
		log.Error(fmt.Sprintf("could not create window: %s", err))
		return ExitFailure
	}
	win.MakeContextCurrent()

	if err := drv.Init(); err != nil {
		log.Error(GLInitFailedMessage, "err", err)
	} else {
		log.Info(fmt.Sprintf("OpenGL version %s", drv.Version()))
	}

	st := stats.New()
	if theApi := api.ServeInBackground(cfg, win, st); theApi != nil {
		defer theApi.Shutdown()
	}
	stopSignals := watchSignals(win)
	defer stopSignals()

	glvars := rendering.NewGLVars(cfg.BGColour())
	glvars.Allocate(drv)
	program := shaders.BuildGLProgram(drv, cfg.Shaders.Vertex.String(), cfg.Shaders.Fragment.String())
	glvars.Start(drv, program)

	loop := &rendering.Loop{
		Driver:  drv,
		Window:  win,
		Vars:    glvars,
		OnFrame: st.Update,
	}
	frames := loop.Run()
	log.Info(fmt.Sprintf("window closed after %d frames", frames))

	return ExitOK
}
