package netgraph

import (
	"slices"
	"testing"
)

// pathGraph builds the path 1-2-...-n.
func pathGraph(n int) *Graph {
	g := New(n)
	for i := 1; i < n; i++ {
		g.Connect(i, i+1)
	}
	return g
}

// starGraph builds a star with center 1 and leaves 2..n.
func starGraph(n int) *Graph {
	g := New(n)
	for i := 2; i <= n; i++ {
		g.Connect(1, i)
	}
	return g
}

func TestConnectSymmetry(t *testing.T) {
	g := New(5)
	g.Connect(2, 4)

	if !g.IsConnected(2, 4) || !g.IsConnected(4, 2) {
		t.Errorf("IsConnected(2,4)=%v IsConnected(4,2)=%v, want both true", g.IsConnected(2, 4), g.IsConnected(4, 2))
	}

	g.Disconnect(4, 2)
	if g.IsConnected(2, 4) || g.IsConnected(4, 2) {
		t.Errorf("after Disconnect, IsConnected(2,4)=%v IsConnected(4,2)=%v, want both false", g.IsConnected(2, 4), g.IsConnected(4, 2))
	}
}

func TestConnectIdempotent(t *testing.T) {
	g := New(3)
	g.Connect(1, 2)
	g.Connect(1, 2)
	g.Connect(2, 1)

	if got := g.Degree(1); got != 1 {
		t.Errorf("Degree(1) = %d, want 1", got)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1", got)
	}
}

func TestSelfLoopIgnored(t *testing.T) {
	g := New(3)
	g.Connect(2, 2)

	if g.IsConnected(2, 2) {
		t.Error("IsConnected(2,2) = true, want false")
	}
	if got := g.Degree(2); got != 0 {
		t.Errorf("Degree(2) = %d, want 0", got)
	}
}

func TestDegree(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Graph
		node  int
		want  int
	}{
		{"Isolated", func() *Graph { return New(3) }, 2, 0},
		{"PathEnd", func() *Graph { return pathGraph(5) }, 1, 1},
		{"PathMiddle", func() *Graph { return pathGraph(5) }, 3, 2},
		{"StarCenter", func() *Graph { return starGraph(5) }, 1, 4},
		{"StarLeaf", func() *Graph { return starGraph(5) }, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build().Degree(tt.node); got != tt.want {
				t.Errorf("Degree(%d) = %d, want %d", tt.node, got, tt.want)
			}
		})
	}
}

func TestIsolateNode(t *testing.T) {
	g := starGraph(5)
	g.IsolateNode(1)

	if got := g.Degree(1); got != 0 {
		t.Errorf("Degree(1) after isolation = %d, want 0", got)
	}
	for leaf := 2; leaf <= 5; leaf++ {
		if g.IsConnected(leaf, 1) {
			t.Errorf("IsConnected(%d, 1) = true after isolation, want false", leaf)
		}
	}
	if got := g.LastIsolated(); got != 1 {
		t.Errorf("LastIsolated() = %d, want 1", got)
	}
}

func TestActiveNodes(t *testing.T) {
	g := pathGraph(4)
	g.Connect(1, 2) // no-op, already present
	g.IsolateNode(2)

	// 1 lost its only edge; 3-4 survives.
	want := []int{3, 4}
	if got := g.ActiveNodes(); !slices.Equal(got, want) {
		t.Errorf("ActiveNodes() = %v, want %v", got, want)
	}
}

func TestEdges(t *testing.T) {
	g := New(4)
	g.Connect(3, 1)
	g.Connect(2, 4)
	g.Connect(1, 2)

	want := [][2]int{{1, 2}, {1, 3}, {2, 4}}
	got := g.Edges()
	if len(got) != len(want) {
		t.Fatalf("Edges() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Edges()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestClone(t *testing.T) {
	g := pathGraph(3)
	g.IsolateNode(3)

	c := g.Clone()
	if c.LastIsolated() != 3 {
		t.Errorf("clone LastIsolated() = %d, want 3", c.LastIsolated())
	}

	c.Disconnect(1, 2)
	if !g.IsConnected(1, 2) {
		t.Error("mutating the clone affected the original")
	}
}

func TestOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		call func(g *Graph)
	}{
		{"ConnectZero", func(g *Graph) { g.Connect(0, 1) }},
		{"ConnectAboveN", func(g *Graph) { g.Connect(1, 6) }},
		{"DegreeNegative", func(g *Graph) { g.Degree(-1) }},
		{"IsolateAboveN", func(g *Graph) { g.IsolateNode(99) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic for out-of-range node ID")
				}
			}()
			tt.call(New(5))
		})
	}
}
