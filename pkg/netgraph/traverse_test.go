package netgraph

import (
	"slices"
	"testing"
)

func TestComponent(t *testing.T) {
	tests := []struct {
		name   string
		build  func() *Graph
		source int
		want   []int
	}{
		{
			name:   "SingletonNoNeighbors",
			build:  func() *Graph { return New(3) },
			source: 2,
			want:   []int{2},
		},
		{
			name:   "PathFromEnd",
			build:  func() *Graph { return pathGraph(4) },
			source: 1,
			want:   []int{1, 2, 3, 4},
		},
		{
			name:   "PathFromMiddlePreorder",
			build:  func() *Graph { return pathGraph(4) },
			source: 3,
			want:   []int{3, 2, 1, 4},
		},
		{
			name: "DisconnectedHalves",
			build: func() *Graph {
				g := New(5)
				g.Connect(1, 2)
				g.Connect(4, 5)
				return g
			},
			source: 4,
			want:   []int{4, 5},
		},
		{
			name: "CycleVisitedOnce",
			build: func() *Graph {
				g := New(3)
				g.Connect(1, 2)
				g.Connect(2, 3)
				g.Connect(3, 1)
				return g
			},
			source: 1,
			want:   []int{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.build().Component(tt.source)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Component(%d) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestComponentRepeatable(t *testing.T) {
	// The visited set is per-call state: a second traversal from the same
	// source must see the same nodes.
	g := pathGraph(4)

	first := g.Component(1)
	second := g.Component(1)
	if !slices.Equal(first, second) {
		t.Errorf("repeated Component(1) differs: %v then %v", first, second)
	}
}

func TestComponentsPartition(t *testing.T) {
	g := New(7)
	g.Connect(1, 2)
	g.Connect(2, 3)
	g.Connect(5, 6)
	// 4 and 7 are singletons.

	components := g.Components()
	if len(components) != 4 {
		t.Fatalf("len(Components()) = %d, want 4", len(components))
	}

	seen := make(map[int]int)
	for _, component := range components {
		for _, node := range component {
			seen[node]++
		}
	}
	for node := 1; node <= 7; node++ {
		if seen[node] != 1 {
			t.Errorf("node %d visited %d times, want exactly once", node, seen[node])
		}
	}
}
