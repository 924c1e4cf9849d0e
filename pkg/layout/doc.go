// Package layout places graph nodes in 2D space using a Fruchterman-Reingold
// force-directed simulation.
//
// Every node repels every other node (k²/d) while edges pull their endpoints
// together (d²/k), where k is the ideal distance derived from the frame area
// and node count. Per-iteration movement is capped by a cooling temperature
// that decays logarithmically, and positions are clamped to the frame's half
// extents, so coordinates always land in [-w/2, w/2] × [-h/2, h/2].
//
// A [Simulator] runs exactly once: construct, [Simulator.Run], then read
// positions. Re-layout after the graph changes takes a fresh instance.
package layout
