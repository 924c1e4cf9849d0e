package influence

import (
	"github.com/cszach/Network-Inoculator/pkg/netgraph"
)

// Calculator computes degree and collective-influence scores over a graph.
// Scores always reflect the graph's current topology; the collective-influence
// cache is filled explicitly with [Calculator.ComputeAll] and kept consistent
// by [Engine] across isolations.
//
// Not safe for concurrent use.
type Calculator struct {
	graph  *netgraph.Graph
	cache  []int // 1-based; valid only when radius > 0
	radius int   // radius the cache was computed for; 0 = not computed
}

// NewCalculator creates a calculator for g.
func NewCalculator(g *netgraph.Graph) *Calculator {
	return &Calculator{graph: g}
}

// Degree returns the current neighbor count of node. It is dynamic: prior
// isolations lower it.
func (c *Calculator) Degree(node int) int {
	return c.graph.Degree(node)
}

// CollectiveInfluence computes the collective influence of node within radius
// from scratch: (deg(node)-1) * Σ (deg(i)-1) over every node i at shortest-hop
// distance exactly radius. One full single-source shortest-path run per call.
func (c *Calculator) CollectiveInfluence(node, radius int) int {
	k := c.graph.Degree(node) - 1
	dist := c.graph.ShortestPaths(node)

	sum := 0
	for i := 1; i <= c.graph.NodeCount(); i++ {
		if dist[i] == radius {
			sum += c.graph.Degree(i) - 1
		}
	}
	return k * sum
}

// ComputeAll fills the collective-influence cache for every node at the given
// radius. Must be called before [Calculator.Cached]. O(n³) for the whole graph.
func (c *Calculator) ComputeAll(radius int) {
	c.cache = make([]int, c.graph.NodeCount()+1)
	c.radius = radius
	for i := 1; i <= c.graph.NodeCount(); i++ {
		c.cache[i] = c.CollectiveInfluence(i, radius)
	}
}

// Cached returns the cached collective influence of node. The cache must have
// been filled by [Calculator.ComputeAll] first.
func (c *Calculator) Cached(node int) int {
	return c.cache[node]
}

// Computed reports whether the cache holds values for the given radius.
func (c *Calculator) Computed(radius int) bool {
	return c.cache != nil && c.radius == radius
}

// refresh recomputes the cached score of a single node.
func (c *Calculator) refresh(node int) {
	c.cache[node] = c.CollectiveInfluence(node, c.radius)
}

// invalidate discards the cache after a mutation it cannot account for.
func (c *Calculator) invalidate() {
	c.cache = nil
	c.radius = 0
}
