package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fosdem/shaderexample/lib/config"
	"github.com/fosdem/shaderexample/lib/stats"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCloser struct {
	closed atomic.Bool
}

func (f *fakeCloser) RequestClose() { f.closed.Store(true) }

func newTestApi(t *testing.T, profiler bool) (*Api, *fakeCloser, *httptest.Server) {
	t.Helper()
	cfg := config.Default()
	cfg.Api = &config.ApiCfg{Bind: "127.0.0.1:0", EnableProfiler: profiler}
	closer := &fakeCloser{}
	a := New(cfg, closer, stats.New())
	a.statsInterval = 10 * time.Millisecond
	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)
	return a, closer, srv
}

func TestGetStats(t *testing.T) {
	a, _, srv := newTestApi(t, false)
	a.Stats.Update(0)
	a.Stats.Update(0)

	resp, err := http.Get(srv.URL + "/api/stats")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var snap stats.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, uint64(2), snap.Frames)
}

func TestGetConfig(t *testing.T) {
	_, _, srv := newTestApi(t, false)

	resp, err := http.Get(srv.URL + "/api/config")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got Config
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, Config{
		Title:          "Shader Example",
		Width:          1200,
		Height:         900,
		VertexShader:   "VertexShader.vert",
		FragmentShader: "FragmentShader.frag",
		ClearColour:    "#00000000",
	}, got)
}

func TestKillRequestsClose(t *testing.T) {
	_, closer, srv := newTestApi(t, false)

	resp, err := http.Get(srv.URL + "/api/kill")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.False(t, closer.closed.Load())

	resp, err = http.Post(srv.URL+"/api/kill", "application/json", nil)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "\"ok\"\n", string(body))
	assert.True(t, closer.closed.Load())
}

func TestMetricsEndpoint(t *testing.T) {
	_, _, srv := newTestApi(t, false)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "shaderexample_frames_drawn_total")
}

func TestProfilerOnlyWhenEnabled(t *testing.T) {
	_, _, srv := newTestApi(t, false)

	resp, err := http.Get(srv.URL + "/prof")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWebsocketStreamsStats(t *testing.T) {
	a, _, srv := newTestApi(t, false)
	a.Stats.Update(0)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, msg, err := ws.ReadMessage()
	require.NoError(t, err)

	var snap stats.Snapshot
	require.NoError(t, json.Unmarshal(msg, &snap))
	assert.Equal(t, uint64(1), snap.Frames)
	assert.Equal(t, 1, snap.WsClients)
}

func TestServeInBackgroundDisabled(t *testing.T) {
	assert.Nil(t, ServeInBackground(config.Default(), &fakeCloser{}, stats.New()))
}

func TestShutdownClosesWebsockets(t *testing.T) {
	a, _, srv := newTestApi(t, false)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer ws.Close()

	require.Eventually(t, func() bool {
		return a.Stats.Snapshot().WsClients == 1
	}, 5*time.Second, 10*time.Millisecond)

	a.Shutdown()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		_, _, err = ws.ReadMessage()
		if err != nil {
			break
		}
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		assert.False(t, netErr.Timeout(), "connection was not closed by the server")
	}
	assert.Eventually(t, func() bool {
		return a.Stats.Snapshot().WsClients == 0
	}, 5*time.Second, 10*time.Millisecond)
}
