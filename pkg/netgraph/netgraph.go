package netgraph

import (
	"fmt"
	"maps"
	"slices"
)

// Graph is an undirected, unweighted graph over nodes 1..n.
// The node count is fixed at construction; only edges change afterwards.
//
// The zero value is not usable - use New to create a valid Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	n            int
	adj          []map[int]struct{} // 1-based; index 0 unused
	lastIsolated int
}

// New creates a graph with nodes 1..n and no edges.
// n must be non-negative; a zero-node graph is valid but inert.
func New(n int) *Graph {
	if n < 0 {
		panic(fmt.Sprintf("netgraph: negative node count %d", n))
	}
	adj := make([]map[int]struct{}, n+1)
	for i := 1; i <= n; i++ {
		adj[i] = make(map[int]struct{})
	}
	return &Graph{n: n, adj: adj}
}

// NodeCount returns the fixed number of nodes.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for i := 1; i <= g.n; i++ {
		total += len(g.adj[i])
	}
	return total / 2
}

// Connect adds the undirected edge a-b. Idempotent.
func (g *Graph) Connect(a, b int) {
	g.checkNode(a)
	g.checkNode(b)
	if a == b {
		return
	}
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
}

// Disconnect removes the undirected edge a-b. Idempotent.
func (g *Graph) Disconnect(a, b int) {
	g.checkNode(a)
	g.checkNode(b)
	delete(g.adj[a], b)
	delete(g.adj[b], a)
}

// IsConnected reports whether the edge a-b exists.
func (g *Graph) IsConnected(a, b int) bool {
	g.checkNode(a)
	g.checkNode(b)
	_, ok := g.adj[a][b]
	return ok
}

// Degree returns the number of neighbors of node.
func (g *Graph) Degree(node int) int {
	g.checkNode(node)
	return len(g.adj[node])
}

// Neighbors returns the neighbors of node in ascending order.
func (g *Graph) Neighbors(node int) []int {
	g.checkNode(node)
	return slices.Sorted(maps.Keys(g.adj[node]))
}

// IsolateNode removes every edge incident to node and records it as the last
// isolated node. The node itself remains a graph member with degree 0.
func (g *Graph) IsolateNode(node int) {
	g.checkNode(node)
	for neighbor := range g.adj[node] {
		delete(g.adj[neighbor], node)
	}
	clear(g.adj[node])
	g.lastIsolated = node
}

// LastIsolated returns the most recently isolated node, or 0 if no node has
// been isolated yet. Used by visualization layers for display emphasis.
func (g *Graph) LastIsolated() int { return g.lastIsolated }

// ActiveNodes returns, in ascending order, every node with positive degree.
func (g *Graph) ActiveNodes() []int {
	var active []int
	for i := 1; i <= g.n; i++ {
		if len(g.adj[i]) > 0 {
			active = append(active, i)
		}
	}
	return active
}

// Edges returns every undirected edge exactly once as [2]int{a, b} with a < b,
// ordered by ascending a then b.
func (g *Graph) Edges() [][2]int {
	var edges [][2]int
	for a := 1; a <= g.n; a++ {
		for _, b := range g.Neighbors(a) {
			if a < b {
				edges = append(edges, [2]int{a, b})
			}
		}
	}
	return edges
}

// Clone returns a deep copy of the graph, including the last-isolated marker.
func (g *Graph) Clone() *Graph {
	c := New(g.n)
	for i := 1; i <= g.n; i++ {
		c.adj[i] = maps.Clone(g.adj[i])
	}
	c.lastIsolated = g.lastIsolated
	return c
}

func (g *Graph) checkNode(node int) {
	if node < 1 || node > g.n {
		panic(fmt.Sprintf("netgraph: node %d out of range [1, %d]", node, g.n))
	}
}
