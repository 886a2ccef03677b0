package app

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/fosdem/shaderexample/lib/config"
	applog "github.com/fosdem/shaderexample/lib/log"
	"github.com/fosdem/shaderexample/lib/rendering/gpu"
	"github.com/fosdem/shaderexample/lib/rendering/gpu/gputest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	closeAfter int
	polls      int
	swaps      int
	current    bool
	closed     atomic.Bool
}

func (w *fakeWindow) ShouldClose() bool {
	return w.closed.Load() || w.polls >= w.closeAfter
}
func (w *fakeWindow) SwapBuffers()        { w.swaps++ }
func (w *fakeWindow) PollEvents()         { w.polls++ }
func (w *fakeWindow) MakeContextCurrent() { w.current = true }
func (w *fakeWindow) RequestClose()       { w.closed.Store(true) }

type fakePlatform struct {
	initErr    error
	createErr  error
	window     *fakeWindow
	created    *config.WindowCfg
	terminated int
}

func (p *fakePlatform) Init() error { return p.initErr }

func (p *fakePlatform) CreateWindow(cfg *config.WindowCfg) (Window, error) {
	p.created = cfg
	if p.createErr != nil {
		return nil, p.createErr
	}
	return p.window, nil
}

func (p *fakePlatform) Terminate() { p.terminated++ }

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(applog.NewHandler(&out, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &out
}

func TestRunExitsNonZeroWhenWindowingInitFails(t *testing.T) {
	captureLogs(t)
	p := &fakePlatform{initErr: errors.New("no display")}
	rec := gputest.NewRecorder()

	assert.Equal(t, ExitFailure, Run(config.Default(), p, rec))
	assert.Nil(t, p.created)
	assert.Zero(t, p.terminated)
	assert.Empty(t, rec.Calls)
}

func TestRunExitsNonZeroWhenWindowCreationFails(t *testing.T) {
	captureLogs(t)
	p := &fakePlatform{createErr: errors.New("no GL 4.1")}
	rec := gputest.NewRecorder()

	assert.Equal(t, ExitFailure, Run(config.Default(), p, rec))
	assert.Equal(t, 1, p.terminated)
	assert.Empty(t, rec.Calls)
}

func TestRunDrawsUntilClosed(t *testing.T) {
	captureLogs(t)
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Shaders.Vertex = config.CfgPath(filepath.Join(dir, "v.vert"))
	cfg.Shaders.Fragment = config.CfgPath(filepath.Join(dir, "f.frag"))
	require.NoError(t, os.WriteFile(cfg.Shaders.Vertex.String(), []byte("vertex"), 0o644))
	require.NoError(t, os.WriteFile(cfg.Shaders.Fragment.String(), []byte("fragment"), 0o644))

	win := &fakeWindow{closeAfter: 4}
	p := &fakePlatform{window: win}
	rec := gputest.NewRecorder()

	assert.Equal(t, ExitOK, Run(cfg, p, rec))

	assert.Equal(t, cfg.Window, p.created)
	assert.True(t, win.current)
	assert.Equal(t, 4, win.swaps)
	assert.Equal(t, 1, p.terminated)
	assert.Len(t, rec.Draws, 4)
	assert.Equal(t, "Init()", rec.Calls[0])
	assert.NotZero(t, rec.InUse)
	assert.Contains(t, rec.Sources, gpu.Shader(5))
	assert.Equal(t, "\nvertex", rec.Sources[5])
	assert.Equal(t, "\nfragment", rec.Sources[6])
}

func TestRunContinuesWhenGLInitFails(t *testing.T) {
	out := captureLogs(t)
	win := &fakeWindow{closeAfter: 1}
	p := &fakePlatform{window: win}
	rec := gputest.NewRecorder()
	rec.InitErr = errors.New("missing function pointers")

	assert.Equal(t, ExitOK, Run(config.Default(), p, rec))
	assert.Contains(t, out.String(), GLInitFailedMessage)
	assert.Len(t, rec.Draws, 1)
}

func TestRunStopsWhenCloseRequested(t *testing.T) {
	captureLogs(t)
	win := &fakeWindow{closeAfter: 1 << 30}
	win.RequestClose()
	p := &fakePlatform{window: win}
	rec := gputest.NewRecorder()

	assert.Equal(t, ExitOK, Run(config.Default(), p, rec))
	assert.Empty(t, rec.Draws)
}
