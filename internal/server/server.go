// Package server exposes a running network over HTTP.
//
// The server owns one in-memory network. Reads (/api/graph, /api/scores,
// /view.svg) and mutations (/api/isolate) are serialized by a mutex, so one
// controller at a time changes the network while any number of viewers poll
// its state.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cszach/Network-Inoculator/pkg/graphio"
	"github.com/cszach/Network-Inoculator/pkg/influence"
	"github.com/cszach/Network-Inoculator/pkg/layout"
	"github.com/cszach/Network-Inoculator/pkg/netgraph"
	"github.com/cszach/Network-Inoculator/pkg/render"
)

// Server serves one contact network over HTTP.
type Server struct {
	mu     sync.Mutex
	graph  *netgraph.Graph
	engine *influence.Engine

	simCfg layout.Config
	radius int
	logger *charmlog.Logger
}

// New creates a server for g. The simulation config drives /view.svg and
// radius is the default collective-influence ball radius for scoring.
func New(g *netgraph.Graph, simCfg layout.Config, radius int, logger *charmlog.Logger) *Server {
	if logger == nil {
		logger = charmlog.Default()
	}
	return &Server{
		graph:  g,
		engine: influence.NewEngine(g),
		simCfg: simCfg,
		radius: radius,
		logger: logger,
	}
}

// Handler builds the chi route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health", s.handleHealth)
	r.Get("/api/graph", s.handleGraph)
	r.Get("/api/scores", s.handleScores)
	r.Post("/api/isolate", s.handleIsolate)
	r.Get("/view.svg", s.handleView)

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	s.logger.Info("Serving network", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("Request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start).Round(time.Millisecond))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type nodeState struct {
	ID       int  `json:"id"`
	Degree   int  `json:"degree"`
	Isolated bool `json:"isolated,omitempty"`
}

type graphState struct {
	Nodes []nodeState    `json:"nodes"`
	Edges []graphio.Edge `json:"edges"`
}

// handleGraph reports the current topology.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	state := s.snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, state)
}

// snapshot captures topology under the caller's lock.
func (s *Server) snapshot() graphState {
	state := graphState{
		Nodes: make([]nodeState, 0, s.graph.NodeCount()),
		Edges: make([]graphio.Edge, 0, s.graph.EdgeCount()),
	}
	for i := 1; i <= s.graph.NodeCount(); i++ {
		state.Nodes = append(state.Nodes, nodeState{
			ID:       i,
			Degree:   s.graph.Degree(i),
			Isolated: i == s.graph.LastIsolated(),
		})
	}
	for _, e := range s.graph.Edges() {
		state.Edges = append(state.Edges, graphio.Edge{From: e[0], To: e[1]})
	}
	return state
}

type nodeScore struct {
	ID        int `json:"id"`
	Degree    int `json:"degree"`
	Influence int `json:"influence"`
}

type scoresResponse struct {
	Radius int         `json:"radius"`
	Scores []nodeScore `json:"scores"`
}

// handleScores reports per-node degree and collective influence.
// An optional ?radius= overrides the server default.
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	radius := s.radius
	if q := r.URL.Query().Get("radius"); q != "" {
		if _, err := fmt.Sscanf(q, "%d", &radius); err != nil || radius < 1 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("radius %q must be a positive integer", q))
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	calc := s.engine.Calculator()
	resp := scoresResponse{Radius: radius, Scores: make([]nodeScore, 0, s.graph.NodeCount())}
	for i := 1; i <= s.graph.NodeCount(); i++ {
		resp.Scores = append(resp.Scores, nodeScore{
			ID:        i,
			Degree:    calc.Degree(i),
			Influence: calc.CollectiveInfluence(i, radius),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type isolateRequest struct {
	Degree bool `json:"degree"`
	Radius int  `json:"radius"`
}

type isolateResponse struct {
	Node           int    `json:"node"`
	Score          int    `json:"score"`
	Unit           string `json:"unit"`
	ConnectedNodes []int  `json:"connected_nodes"`
	Components     int    `json:"components"`
}

// handleIsolate runs one isolation round. Returns 409 when the network is
// already inoculated.
func (s *Server) handleIsolate(w http.ResponseWriter, r *http.Request) {
	var req isolateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}
	}
	if req.Radius < 0 {
		writeError(w, http.StatusBadRequest, "radius must not be negative")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.engine.Isolate(influence.Options{
		UseDegree: req.Degree,
		Radius:    req.Radius,
	})
	if err != nil {
		if errors.Is(err, influence.ErrNetworkInoculated) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	components := 0
	for _, comp := range s.graph.Components() {
		if len(comp) > 1 {
			components++
		}
	}

	s.logger.Info("Isolated node", "node", result.Node, "score", result.Score, "unit", result.Unit)
	writeJSON(w, http.StatusOK, isolateResponse{
		Node:           result.Node,
		Score:          result.Score,
		Unit:           result.Unit,
		ConnectedNodes: result.ConnectedNodes,
		Components:     components,
	})
}

// handleView renders the current network as SVG. The layout is recomputed on
// every request so isolations show up immediately.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	sim := layout.NewSimulator(s.graph, s.simCfg)
	sim.Run()
	l := graphio.SnapshotLayout(s.graph, sim, s.simCfg)
	s.mu.Unlock()

	svg := render.RenderSVG(l, render.WithLabels())
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(svg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
