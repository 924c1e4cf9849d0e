package graphio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/cszach/Network-Inoculator/pkg/layout"
	"github.com/cszach/Network-Inoculator/pkg/netgraph"
)

// Layout is the serialization format for a computed node placement.
// It captures a graph snapshot (nodes with coordinates and degrees, surviving
// edges) plus the frame it was computed for, and is consumed by the render
// sinks and the HTTP viewer.
type Layout struct {
	// RunID uniquely identifies the simulation run that produced this layout.
	RunID string `json:"run_id"`

	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Iterations int     `json:"iterations"`

	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges,omitempty"`
}

// Node is one placed graph node. Coordinates are frame-relative, already
// clamped to [-width/2, width/2] × [-height/2, height/2].
type Node struct {
	ID       int     `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Degree   int     `json:"degree"`
	Isolated bool    `json:"isolated,omitempty"` // last isolated, for display emphasis
}

// Edge is an undirected edge between two placed nodes, stored with From < To.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// SnapshotLayout captures graph topology plus simulator positions into a
// serializable layout tagged with a fresh run ID.
func SnapshotLayout(g *netgraph.Graph, sim *layout.Simulator, cfg layout.Config) Layout {
	l := Layout{
		RunID:      uuid.NewString(),
		Width:      cfg.Width,
		Height:     cfg.Height,
		Iterations: cfg.Iterations,
		Nodes:      make([]Node, 0, g.NodeCount()),
	}

	for i := 1; i <= g.NodeCount(); i++ {
		p := sim.Position(i)
		l.Nodes = append(l.Nodes, Node{
			ID:       i,
			X:        p.X,
			Y:        p.Y,
			Degree:   g.Degree(i),
			Isolated: i == g.LastIsolated(),
		})
	}
	for _, edge := range g.Edges() {
		l.Edges = append(l.Edges, Edge{From: edge[0], To: edge[1]})
	}
	return l
}

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout and validates it.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}

	if len(l.Nodes) == 0 {
		return Layout{}, fmt.Errorf("layout contains no nodes")
	}
	if l.Width <= 0 || l.Height <= 0 {
		return Layout{}, fmt.Errorf("layout frame %gx%g is not positive", l.Width, l.Height)
	}

	known := make(map[int]bool, len(l.Nodes))
	for _, n := range l.Nodes {
		if n.ID < 1 {
			return Layout{}, fmt.Errorf("node ID %d out of range, IDs start at 1", n.ID)
		}
		known[n.ID] = true
	}
	for _, e := range l.Edges {
		if !known[e.From] || !known[e.To] {
			return Layout{}, fmt.Errorf("edge %d-%d references an unknown node", e.From, e.To)
		}
	}

	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
