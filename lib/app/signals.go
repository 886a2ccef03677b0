package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
)

// watchSignals turns a termination signal into a close request, so the
// render loop ends the same way as when the user closes the window.
func watchSignals(closer interface{ RequestClose() }) (stop func()) {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, shutdownSignals...)

	go func() {
		select {
		case sig := <-ch:
			slog.With("module", "app").Info(fmt.Sprintf("received %s, closing window", sig))
			closer.RequestClose()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
