package netgraph

import "math"

// Unreachable is the distance reported by [Graph.ShortestPaths] for nodes with
// no path from the source. Callers must check for it before using a distance.
const Unreachable = math.MaxInt

// ShortestPaths returns the hop count from source to every node. The result
// is indexed by node ID (index 0 is unused and holds Unreachable);
// result[source] is 0 and unreachable nodes hold Unreachable.
//
// This is Dijkstra's algorithm specialized to unit edge weights. Selection
// ties are broken deterministically: scanning ascending node IDs, the first
// node carrying the minimal tentative distance is chosen. This ordering is
// part of the contract - downstream influence scoring depends on it.
func (g *Graph) ShortestPaths(source int) []int {
	g.checkNode(source)

	dist := make([]int, g.n+1)
	settled := make([]bool, g.n+1)
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[source] = 0

	for round := 1; round < g.n; round++ {
		next := 0
		for j := 1; j <= g.n; j++ {
			if settled[j] {
				continue
			}
			if next == 0 || dist[j] < dist[next] {
				next = j
			}
		}
		if next == 0 || dist[next] == Unreachable {
			break // only unreachable nodes remain
		}
		settled[next] = true

		for neighbor := range g.adj[next] {
			if !settled[neighbor] && dist[next]+1 < dist[neighbor] {
				dist[neighbor] = dist[next] + 1
			}
		}
	}
	return dist
}
