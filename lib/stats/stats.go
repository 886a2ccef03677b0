package stats

import (
	"sync"
	"time"
)

// Stats is updated by the render loop and read by the api.
type Stats struct {
	current Snapshot

	frameCounter uint64
	// frameWindow sums the frame deltas since FPS was last computed.
	frameWindow time.Duration
	start       time.Time
	now         func() time.Time

	mu sync.Mutex
}

func New() *Stats {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Stats {
	s := &Stats{now: now}
	s.start = now()
	return s
}

// Update registers one presented frame that took dt since the previous
// one. FPS is the number of frames in the last full second of deltas.
func (s *Stats) Update(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.Frames++
	s.frameCounter++
	s.frameWindow += dt
	if s.frameWindow >= 1*time.Second {
		s.current.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameWindow = 0
	}

	s.current.Uptime = float64(s.now().Sub(s.start).Nanoseconds()) / 1e9
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.WsClients = n
}

// Snapshot returns a copy safe to encode while the loop keeps running.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

type Snapshot struct {
	Frames    uint64  `json:"frames"`
	Uptime    float64 `json:"uptime"`
	FPS       uint64  `json:"fps"`
	WsClients int     `json:"ws_clients"`
}
