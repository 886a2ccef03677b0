//go:build unix

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestWatchSignalsRequestsClose(t *testing.T) {
	captureLogs(t)
	win := &fakeWindow{}
	stop := watchSignals(win)
	defer stop()

	assert.NoError(t, unix.Kill(unix.Getpid(), unix.SIGTERM))
	assert.Eventually(t, win.closed.Load, 5*time.Second, 10*time.Millisecond)
}
