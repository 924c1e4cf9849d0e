// Package netgraph implements the undirected, unweighted contact graph that
// the inoculation engine operates on.
//
// # Overview
//
// Nodes are identified by integers 1..n, with n fixed at construction. The
// adjacency relation is symmetric and mutated only through [Graph.Connect],
// [Graph.Disconnect], and [Graph.IsolateNode]. Traversal state lives outside
// the graph: [Graph.Component] allocates a fresh visited set per call, so no
// scratch state ever leaks between operations.
//
// # Node ID Contract
//
// Passing a node ID outside [1, n] is a programming error and panics. Validate
// external input before it reaches this package (see the graphio package).
//
// # Shortest Paths
//
// [Graph.ShortestPaths] computes single-source hop counts using Dijkstra's
// algorithm specialized to unit edge weights. Unreachable nodes report the
// [Unreachable] sentinel, never an error.
package netgraph
