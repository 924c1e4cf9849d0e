package influence

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/cszach/Network-Inoculator/pkg/netgraph"
)

func TestIsolateDegree(t *testing.T) {
	g := starGraph(5)
	engine := NewEngine(g)

	result, err := engine.Isolate(Options{UseDegree: true})
	if err != nil {
		t.Fatalf("Isolate: %v", err)
	}

	if result.Node != 1 {
		t.Errorf("Node = %d, want 1 (star center)", result.Node)
	}
	if result.Score != 4 {
		t.Errorf("Score = %d, want 4", result.Score)
	}
	if result.Unit != UnitDegree {
		t.Errorf("Unit = %q, want %q", result.Unit, UnitDegree)
	}
	if want := []int{1, 2, 3, 4, 5}; !slices.Equal(result.ConnectedNodes, want) {
		t.Errorf("ConnectedNodes = %v, want %v", result.ConnectedNodes, want)
	}
	if got := g.Degree(1); got != 0 {
		t.Errorf("Degree(1) after isolation = %d, want 0", got)
	}
}

func TestIsolateDegreeTieKeepsLowestID(t *testing.T) {
	// Two disjoint edges: nodes 1-2 and 3-4 all have degree 1.
	g := netgraph.New(4)
	g.Connect(3, 4)
	g.Connect(1, 2)

	result, err := NewEngine(g).Isolate(Options{UseDegree: true})
	if err != nil {
		t.Fatalf("Isolate: %v", err)
	}
	if result.Node != 1 {
		t.Errorf("Node = %d, want 1 (ascending scan keeps first maximum)", result.Node)
	}
}

func TestIsolateCollectiveInfluence(t *testing.T) {
	// Bridged stars: center 1 and center 5 dominate; both score
	// (4-1) * ((1-1)*3 + (4-1)) = 9 at radius 1, so the tie keeps node 1.
	g := netgraph.New(8)
	g.Connect(1, 2)
	g.Connect(1, 3)
	g.Connect(1, 4)
	g.Connect(5, 6)
	g.Connect(5, 7)
	g.Connect(5, 8)
	g.Connect(1, 5)

	result, err := NewEngine(g).Isolate(Options{Radius: 1})
	if err != nil {
		t.Fatalf("Isolate: %v", err)
	}
	if result.Node != 1 {
		t.Errorf("Node = %d, want 1", result.Node)
	}
	if result.Score != 9 {
		t.Errorf("Score = %d, want 9", result.Score)
	}
	if result.Unit != UnitCollectiveInfluence {
		t.Errorf("Unit = %q, want %q", result.Unit, UnitCollectiveInfluence)
	}
}

func TestIsolateNetworkInoculated(t *testing.T) {
	tests := []struct {
		name  string
		build func() *netgraph.Graph
		opts  Options
	}{
		{"EmptyGraphDegree", func() *netgraph.Graph { return netgraph.New(4) }, Options{UseDegree: true}},
		{"EmptyGraphInfluence", func() *netgraph.Graph { return netgraph.New(4) }, Options{}},
		// A path graph has edges but every collective influence at radius 2
		// is zero, so influence mode terminates while degree mode would not.
		{"ZeroInfluenceWithEdges", func() *netgraph.Graph { return pathGraph(3) }, Options{Radius: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.build()
			edges := g.EdgeCount()
			_, err := NewEngine(g).Isolate(tt.opts)
			if !errors.Is(err, ErrNetworkInoculated) {
				t.Fatalf("err = %v, want ErrNetworkInoculated", err)
			}
			if got := g.EdgeCount(); got != edges {
				t.Errorf("EdgeCount changed from %d to %d on failed isolation", edges, got)
			}
		})
	}
}

func TestIsolateOutputAndTrace(t *testing.T) {
	g := starGraph(4)
	var out, trace bytes.Buffer

	_, err := NewEngine(g).Isolate(Options{UseDegree: true, Output: &out, Trace: &trace})
	if err != nil {
		t.Fatalf("Isolate: %v", err)
	}

	if got, want := out.String(), "1 3\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	// Isolating the star center leaves no connected nodes.
	if got, want := trace.String(), "Connected components:\n"; got != want {
		t.Errorf("trace = %q, want %q", got, want)
	}
}

func TestIsolateTraceListsActiveNodes(t *testing.T) {
	// Path 1-2-3-4-5: node 3 has the highest degree tie broken to node 2
	// (degree 2 first seen). After isolating 2, nodes 3-4-5 stay connected.
	g := pathGraph(5)
	var trace bytes.Buffer

	result, err := NewEngine(g).Isolate(Options{UseDegree: true, Trace: &trace})
	if err != nil {
		t.Fatalf("Isolate: %v", err)
	}
	if result.Node != 2 {
		t.Fatalf("Node = %d, want 2", result.Node)
	}
	if got, want := trace.String(), "Connected components: 3 4 5\n"; got != want {
		t.Errorf("trace = %q, want %q", got, want)
	}
}

func TestIncrementalRefreshEquivalence(t *testing.T) {
	// Compare the engine's cache against a from-scratch recomputation after
	// every isolation. The second graph's diameter exceeds radius+1, so nodes
	// well outside the refresh window exist on every round.
	tests := []struct {
		name  string
		nodes int
		edges [][2]int
	}{
		{
			name:  "dense",
			nodes: 7,
			edges: [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {2, 6}, {6, 7}, {3, 6}},
		},
		{
			name:  "hub with long tail",
			nodes: 10,
			edges: [][2]int{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {6, 7}, {7, 8}, {8, 9}, {8, 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := netgraph.New(tt.nodes)
			for _, e := range tt.edges {
				g.Connect(e[0], e[1])
			}

			engine := NewEngine(g)
			rounds := 0
			for {
				if _, err := engine.Isolate(Options{Radius: 2}); err != nil {
					if !errors.Is(err, ErrNetworkInoculated) {
						t.Fatalf("round %d: %v", rounds, err)
					}
					break
				}
				rounds++
				fresh := NewCalculator(g)
				for node := 1; node <= g.NodeCount(); node++ {
					want := fresh.CollectiveInfluence(node, 2)
					if got := engine.Calculator().Cached(node); got != want {
						t.Errorf("round %d: Cached(%d) = %d, want %d", rounds, node, got, want)
					}
				}
			}
			if rounds == 0 {
				t.Fatal("no isolation rounds ran")
			}
		})
	}
}

func TestRefreshReachesPastRadius(t *testing.T) {
	// Hub 1 with a three-hop tail 1-6-7-8 and leaves 9, 10 on node 8. Node 8
	// sits at distance 3 from the hub, one hop past radius 2, yet its score
	// depends on node 6's degree, which drops when the hub goes. After the
	// first round its cached score must already be zero, so the second round
	// finds nothing left to isolate.
	g := netgraph.New(10)
	edges := [][2]int{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {6, 7}, {7, 8}, {8, 9}, {8, 10}}
	for _, e := range edges {
		g.Connect(e[0], e[1])
	}

	engine := NewEngine(g)
	result, err := engine.Isolate(Options{Radius: 2})
	if err != nil {
		t.Fatalf("Isolate: %v", err)
	}
	if result.Node != 1 {
		t.Fatalf("Node = %d, want 1 (hub)", result.Node)
	}
	if got := engine.Calculator().Cached(8); got != 0 {
		t.Errorf("Cached(8) after isolating hub = %d, want 0", got)
	}
	if _, err := engine.Isolate(Options{Radius: 2}); !errors.Is(err, ErrNetworkInoculated) {
		t.Errorf("second round err = %v, want ErrNetworkInoculated", err)
	}
}

func TestDegreeRoundInvalidatesInfluenceCache(t *testing.T) {
	// Triangle 1-2-3 with a tail 3-4-5-6 and a leaf 7 on node 1. A
	// collective-influence round removes node 1 and fills the cache; a degree
	// round then removes node 3 behind the cache's back. The next
	// collective-influence round must rescore the mutated graph, where no
	// positive node remains, instead of replaying stale entries.
	g := netgraph.New(7)
	edges := [][2]int{{1, 2}, {2, 3}, {1, 3}, {3, 4}, {4, 5}, {5, 6}, {1, 7}}
	for _, e := range edges {
		g.Connect(e[0], e[1])
	}

	engine := NewEngine(g)
	result, err := engine.Isolate(Options{Radius: 2})
	if err != nil {
		t.Fatalf("influence round: %v", err)
	}
	if result.Node != 1 {
		t.Fatalf("influence round Node = %d, want 1", result.Node)
	}

	result, err = engine.Isolate(Options{UseDegree: true})
	if err != nil {
		t.Fatalf("degree round: %v", err)
	}
	if result.Node != 3 {
		t.Fatalf("degree round Node = %d, want 3", result.Node)
	}
	if engine.Calculator().Computed(2) {
		t.Error("Computed(2) = true after degree round, want false")
	}

	if _, err := engine.Isolate(Options{Radius: 2}); !errors.Is(err, ErrNetworkInoculated) {
		t.Errorf("final round err = %v, want ErrNetworkInoculated", err)
	}
}

func TestInoculate(t *testing.T) {
	g := pathGraph(6)
	results, err := NewEngine(g).Inoculate(2, Options{UseDegree: true})
	if err != nil {
		t.Fatalf("Inoculate: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	// Each isolated node must have dropped to degree 0.
	for _, r := range results {
		if got := g.Degree(r.Node); got != 0 {
			t.Errorf("Degree(%d) = %d after isolation, want 0", r.Node, got)
		}
	}
}

func TestInoculateStopsWhenExhausted(t *testing.T) {
	// A single edge supports exactly one degree isolation; asking for three
	// must surface the terminal condition with the partial results.
	g := netgraph.New(3)
	g.Connect(1, 2)

	results, err := NewEngine(g).Inoculate(3, Options{UseDegree: true})
	if !errors.Is(err, ErrNetworkInoculated) {
		t.Fatalf("err = %v, want ErrNetworkInoculated", err)
	}
	if len(results) != 1 {
		t.Errorf("len(results) = %d, want 1", len(results))
	}
	if results[0].Node != 1 {
		t.Errorf("results[0].Node = %d, want 1", results[0].Node)
	}
}
