package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/fosdem/shaderexample/lib/config"
	"github.com/fosdem/shaderexample/lib/metrics"
	"github.com/fosdem/shaderexample/lib/stats"
	"github.com/gorilla/websocket"
)

// Closer is whatever ends the render loop, normally the window.
type Closer interface {
	RequestClose()
}

type Api struct {
	srv    http.Server
	mux    *http.ServeMux
	cfg    *config.Config
	closer Closer
	log    *slog.Logger

	Stats *stats.Stats

	wsClients      map[*websocket.Conn]bool
	wsMutex        sync.Mutex
	statsInterval  time.Duration
	profileSeconds time.Duration
}

func New(cfg *config.Config, closer Closer, s *stats.Stats) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.closer = closer
	a.Stats = s
	a.log = slog.With("module", "api")
	a.srv.Addr = cfg.Api.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]bool)
	a.statsInterval = 2 * time.Second
	a.profileSeconds = 10 * time.Second
	a.routes()
	return a
}

func (a *Api) routes() {
	if a.cfg.Api.EnableProfiler {
		a.mux.HandleFunc("GET /prof", a.profileCPU)
	}
	a.mux.HandleFunc("POST /api/kill", a.suicide)
	a.mux.HandleFunc("GET /api/stats", a.getStats)
	a.mux.HandleFunc("GET /api/config", a.handleConfig)
	a.mux.HandleFunc("GET /api/ws", a.handleWebsocket)
	a.mux.Handle("GET /metrics", metrics.Handler())
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

// Shutdown stops the web server and closes the websockets it handed out;
// the server does not track hijacked connections itself.
func (a *Api) Shutdown() {
	err := a.srv.Close()
	if err != nil {
		a.log.Warn(fmt.Sprintf("could not close web server: %s", err))
	}
	a.closeWebsockets()
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(a.profileSeconds)
	pprof.StopCPUProfile()
}

// @Summary	Close the window and exit
// @Router		/api/kill [post]
// @Tags		base
// @Success	200
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	a.log.Info("shutting down as per api request")
	a.closer.RequestClose()
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.log.Warn(fmt.Sprintf("could not write response: %s", err))
	}
}

// @Summary	Frame counters and uptime
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Snapshot
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(a.Stats.Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
	}
}

type Config struct {
	Title          string `json:"title"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	VertexShader   string `json:"vertex_shader"`
	FragmentShader string `json:"fragment_shader"`
	ClearColour    string `json:"clear_colour"`
}

// @Summary	Window and shader settings in use
// @Router		/api/config [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	Config
func (a *Api) handleConfig(w http.ResponseWriter, _ *http.Request) {
	result := &Config{
		Title:          a.cfg.Window.Title,
		Width:          a.cfg.Window.Width,
		Height:         a.cfg.Window.Height,
		VertexShader:   a.cfg.Shaders.Vertex.String(),
		FragmentShader: a.cfg.Shaders.Fragment.String(),
		ClearColour:    a.cfg.ClearColour,
	}
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(result)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode config: %s", err), http.StatusInternalServerError)
	}
}

// ServeInBackground starts the web server when the config asks for one.
// It returns nil otherwise.
func ServeInBackground(cfg *config.Config, closer Closer, s *stats.Stats) *Api {
	if cfg.Api == nil {
		return nil
	}
	theApi := New(cfg, closer, s)

	theApi.log.Info(fmt.Sprintf("starting web server on %s", cfg.Api.Bind))
	go func() {
		err := theApi.Serve()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			theApi.log.Error(fmt.Sprintf("web server stopped: %s", err))
		}
	}()
	return theApi
}
