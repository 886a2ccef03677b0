package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/fosdem/shaderexample/lib/app"
	"github.com/fosdem/shaderexample/lib/config"
	"github.com/fosdem/shaderexample/lib/log"
	"github.com/fosdem/shaderexample/lib/rendering/glcore"
	"github.com/fosdem/shaderexample/lib/sink/windowsink"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	cfgPath := flag.String("config", "", "YAML config file; defaults are used when empty")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log.Setup(*debug)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Parse(*cfgPath)
		if err != nil {
			slog.Error(fmt.Sprintf("could not load config: %s", err))
			os.Exit(app.ExitFailure)
		}
	}

	os.Exit(app.Run(cfg, windowsink.Platform{}, glcore.New()))
}
