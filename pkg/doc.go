// Package pkg provides the core libraries for network inoculation analysis.
//
// # Overview
//
// Stopcontagion models a population as an undirected contact network and
// finds the nodes whose isolation fragments contagion spread the fastest.
// The pkg directory is organized by pipeline stage:
//
//  1. [netgraph] - Undirected graph structure (adjacency, traversal, BFS-style
//     shortest paths)
//  2. [influence] - Node scoring (degree, collective influence) and the
//     isolation engine
//  3. [layout] - Force-directed 2D placement for visualization
//  4. [graphio] - Edge-list parsing and layout serialization
//  5. [render] - SVG, DOT, PDF, and PNG output
//  6. [cache] - Layout caching keyed by graph topology
//  7. [config] - TOML configuration
//  8. [buildinfo] - ldflags version information
//
// # Quick Start
//
// Load a network, isolate its most influential spreader, and draw the result:
//
//	g, _ := graphio.ReadEdgeListFile("contacts.txt")
//
//	engine := influence.NewEngine(g)
//	result, _ := engine.Isolate(influence.Options{})
//	fmt.Printf("isolated %d (influence %d)\n", result.Node, result.Score)
//
//	cfg := layout.Config{Width: 1080, Height: 800, Iterations: 1000}
//	sim := layout.NewSimulator(g, cfg)
//	sim.Run()
//	l := graphio.SnapshotLayout(g, sim, cfg)
//	svg := render.RenderSVG(l)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/influence    # Specific package
//
// [netgraph]: https://pkg.go.dev/github.com/cszach/Network-Inoculator/pkg/netgraph
// [influence]: https://pkg.go.dev/github.com/cszach/Network-Inoculator/pkg/influence
// [layout]: https://pkg.go.dev/github.com/cszach/Network-Inoculator/pkg/layout
// [graphio]: https://pkg.go.dev/github.com/cszach/Network-Inoculator/pkg/graphio
// [render]: https://pkg.go.dev/github.com/cszach/Network-Inoculator/pkg/render
// [cache]: https://pkg.go.dev/github.com/cszach/Network-Inoculator/pkg/cache
// [config]: https://pkg.go.dev/github.com/cszach/Network-Inoculator/pkg/config
// [buildinfo]: https://pkg.go.dev/github.com/cszach/Network-Inoculator/pkg/buildinfo
package pkg
