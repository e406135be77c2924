// Package http exposes a running simulation over a small JSON API so
// external visualizers can drive the step loop and render snapshots.
//
// The simulation facade serializes mutating calls internally, so the
// handler can be used by any number of concurrent clients.
package http

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/contagion"
	"github.com/aretw0/contagion/pkg/display"
	"github.com/aretw0/contagion/pkg/domain"
)

// Server wraps a Simulation behind HTTP handlers.
type Server struct {
	sim     *contagion.Simulation
	streams *StreamManager
	logger  *slog.Logger
}

// NewHandler creates the HTTP handler for a simulation. When registry is
// non-nil the standard Prometheus handler is mounted at /metrics.
func NewHandler(sim *contagion.Simulation, registry *prometheus.Registry, logger *slog.Logger) http.Handler {
	s := &Server{
		sim:     sim,
		streams: NewStreamManager(),
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Get("/state", s.State)
	r.Post("/step", s.Step)
	r.Post("/seed", s.Seed)
	r.Get("/frame.png", s.Frame)
	r.Get("/events", s.SubscribeEvents)
	r.Get("/healthz", s.Health)
	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
	return r
}

// SnapshotResponse is the wire form of a grid snapshot. Cells are the
// row-major state ordinals.
type SnapshotResponse struct {
	Step   int            `json:"step"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Cells  []domain.State `json:"cells"`
	Census map[string]int `json:"census"`
}

func snapshotResponse(sim *contagion.Simulation, snap domain.Snapshot) SnapshotResponse {
	w, h := sim.Size()
	census := make(map[string]int, len(domain.States))
	for state, count := range snap.Grid.Census() {
		census[state.String()] = count
	}
	return SnapshotResponse{
		Step:   snap.Step,
		Width:  w,
		Height: h,
		Cells:  snap.Grid.Cells(),
		Census: census,
	}
}

// State handles GET /state.
func (s *Server) State(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, snapshotResponse(s.sim, s.sim.Snapshot()))
}

// StepRequest is the body of POST /step. Count defaults to 1.
type StepRequest struct {
	Count int `json:"count"`
}

// Step handles POST /step: advances the simulation and broadcasts each new
// snapshot to SSE subscribers.
func (s *Server) Step(w http.ResponseWriter, r *http.Request) {
	body := StepRequest{Count: 1}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}
	if body.Count < 1 || body.Count > 10000 {
		http.Error(w, "count must be between 1 and 10000", http.StatusBadRequest)
		return
	}

	var snap domain.Snapshot
	for i := 0; i < body.Count; i++ {
		snap = s.sim.Step()
		s.broadcast(snap)
	}
	s.writeJSON(w, snapshotResponse(s.sim, snap))
}

// SeedRequest is the body of POST /seed.
type SeedRequest struct {
	Ratio float64 `json:"ratio"`
	State string  `json:"state"`
}

// SeedResponse reports how many cells a seeding pass affected.
type SeedResponse struct {
	Affected int `json:"affected"`
}

// Seed handles POST /seed.
func (s *Server) Seed(w http.ResponseWriter, r *http.Request) {
	var body SeedRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	state := domain.Latent
	if body.State != "" {
		var err error
		if state, err = domain.ParseState(body.State); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	affected, err := s.sim.Seed(body.Ratio, state)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, SeedResponse{Affected: affected})
}

// Frame handles GET /frame.png, rendering the current grid as a PNG.
// The optional "scale" query parameter sets pixels per cell (default 4).
func (s *Server) Frame(w http.ResponseWriter, r *http.Request) {
	scale := 4
	if raw := r.URL.Query().Get("scale"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 64 {
			http.Error(w, "scale must be an integer between 1 and 64", http.StatusBadRequest)
			return
		}
		scale = v
	}

	img, err := display.Image(s.sim.Snapshot().Grid, scale)
	if err != nil {
		// Only reachable if the kernel broke its state invariant.
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		s.logger.Error("frame encode failed", "error", err)
	}
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	snap := s.sim.Snapshot()
	s.writeJSON(w, map[string]any{
		"app":     "contagion-http",
		"version": contagion.Version,
		"step":    snap.Step,
	})
}

// SubscribeEvents handles GET /events (SSE). Each broadcast carries the
// JSON snapshot produced by a step.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events, cancel := s.streams.Subscribe()
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func (s *Server) broadcast(snap domain.Snapshot) {
	payload, err := json.Marshal(snapshotResponse(s.sim, snap))
	if err != nil {
		s.logger.Error("snapshot marshal failed", "error", err)
		return
	}
	s.streams.Broadcast(string(payload))
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}
