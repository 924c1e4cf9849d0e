package influence

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cszach/Network-Inoculator/pkg/netgraph"
)

// Scoring units reported in [Result.Unit].
const (
	UnitDegree              = "degree"
	UnitCollectiveInfluence = "collective influence"
)

// DefaultRadius is the default collective-influence search radius.
const DefaultRadius = 2

// ErrNetworkInoculated is returned by [Engine.Isolate] and [Engine.Inoculate]
// when no node with a positive score remains. Further isolations would have no
// effect on contagion spread.
var ErrNetworkInoculated = errors.New("no node with positive influence remains")

// Options configures a single isolation round.
type Options struct {
	// UseDegree selects raw degree as the scoring unit instead of collective
	// influence.
	UseDegree bool

	// Radius is the collective-influence search radius. Ignored when UseDegree
	// is set. Zero means DefaultRadius.
	Radius int

	// Output, when non-nil, receives one "<node> <score>" line per isolation.
	Output io.Writer

	// Trace, when non-nil, receives a "Connected components:" line listing all
	// nodes with positive degree after each isolation.
	Trace io.Writer
}

func (o Options) radius() int {
	if o.Radius <= 0 {
		return DefaultRadius
	}
	return o.Radius
}

func (o Options) unit() string {
	if o.UseDegree {
		return UnitDegree
	}
	return UnitCollectiveInfluence
}

// Result describes one completed isolation.
type Result struct {
	// Node is the isolated node.
	Node int

	// Score is the node's influence at selection time, in Unit.
	Score int

	// Unit is UnitDegree or UnitCollectiveInfluence.
	Unit string

	// ConnectedNodes lists every node that was reachable from Node, regardless
	// of hop count, immediately before the isolation. Node itself comes first.
	// Visualization layers use it to recolor the affected display group.
	ConnectedNodes []int
}

// Engine selects and isolates the highest-scoring node of a graph, one round
// at a time. It owns the consistency of the calculator's score cache across
// isolations.
//
// Not safe for concurrent use.
type Engine struct {
	graph *netgraph.Graph
	calc  *Calculator
}

// NewEngine creates an isolation engine for g.
func NewEngine(g *netgraph.Graph) *Engine {
	return &Engine{graph: g, calc: NewCalculator(g)}
}

// Calculator returns the engine's score calculator. Useful for reading cached
// collective influences after isolations.
func (e *Engine) Calculator() *Calculator { return e.calc }

// Isolate selects the node with the highest score, removes all of its edges,
// and reports what changed. Nodes are scanned in ascending ID order and only a
// strictly greater score replaces the current candidate, so ties keep the
// lowest ID.
//
// Returns ErrNetworkInoculated if every node scores zero; the graph is left
// untouched in that case.
func (e *Engine) Isolate(opts Options) (Result, error) {
	if opts.UseDegree {
		// Degree selection still mutates the graph, so any collective-influence
		// cache filled by an earlier round is stale afterwards.
		e.calc.invalidate()
		return e.isolate(opts, e.calc.Degree)
	}

	radius := opts.radius()
	if !e.calc.Computed(radius) {
		e.calc.ComputeAll(radius)
	}
	return e.isolate(opts, e.calc.Cached)
}

// isolate runs one selection/snapshot/mutation round using score to rank nodes.
func (e *Engine) isolate(opts Options, score func(node int) int) (Result, error) {
	best, bestScore := 0, 0
	for i := 1; i <= e.graph.NodeCount(); i++ {
		if s := score(i); s > bestScore {
			best, bestScore = i, s
		}
	}
	if best == 0 {
		return Result{}, ErrNetworkInoculated
	}

	// Snapshot reachability (and, in collective-influence mode, distances)
	// before any edge is removed.
	connected := e.graph.Component(best)
	var dist []int
	if !opts.UseDegree {
		dist = e.graph.ShortestPaths(best)
	}

	e.graph.IsolateNode(best)

	if dist != nil {
		// Degree changes reach one hop past the scoring radius: a node at
		// distance radius+1 still has the removed node's neighbors inside its
		// window. Beyond that, neither window membership nor member degrees
		// can change, since removing edges only severs paths through the
		// removed node.
		radius := opts.radius()
		for i := 1; i <= e.graph.NodeCount(); i++ {
			if dist[i] <= radius+1 {
				e.calc.refresh(i)
			}
		}
	}

	if opts.Output != nil {
		fmt.Fprintf(opts.Output, "%d %d\n", best, bestScore)
	}
	if opts.Trace != nil {
		writeTrace(opts.Trace, e.graph.ActiveNodes())
	}

	return Result{
		Node:           best,
		Score:          bestScore,
		Unit:           opts.unit(),
		ConnectedNodes: connected,
	}, nil
}

// Inoculate runs count sequential isolations. It stops early and returns the
// results obtained so far together with ErrNetworkInoculated when no eligible
// node remains before count rounds complete.
func (e *Engine) Inoculate(count int, opts Options) ([]Result, error) {
	results := make([]Result, 0, count)
	for i := 0; i < count; i++ {
		result, err := e.Isolate(opts)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func writeTrace(w io.Writer, active []int) {
	var b strings.Builder
	b.WriteString("Connected components:")
	for _, node := range active {
		fmt.Fprintf(&b, " %d", node)
	}
	b.WriteByte('\n')
	io.WriteString(w, b.String())
}
