package layout

import (
	"math"
	"math/rand"

	"github.com/cszach/Network-Inoculator/pkg/netgraph"
)

// Default simulation parameters.
const (
	DefaultWidth      = 1080.0
	DefaultHeight     = 800.0
	DefaultIterations = 1000
	DefaultSeed       = uint64(42)
)

// coolingStart is the initial value of the cooling counter; the temperature
// follows log10 of the counter and holds its last value once the counter
// drops below 2.
const coolingStart = 100

// Config controls a simulation run. The zero value is replaced by the
// package defaults field by field.
type Config struct {
	Width      float64
	Height     float64
	Iterations int
	Seed       uint64
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Iterations <= 0 {
		c.Iterations = DefaultIterations
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	return c
}

// Simulator computes a force-directed placement for one graph snapshot.
// Positions and displacement accumulators are owned exclusively by the
// simulator during [Simulator.Run]; read positions only after Run returns.
type Simulator struct {
	graph       *netgraph.Graph
	width       float64
	height      float64
	k           float64 // ideal distance between nodes
	x           float64 // cooling counter
	temperature float64
	iterations  int
	pos         []Vec // 1-based; index 0 unused
	disp        []Vec
}

// NewSimulator creates a simulator over g with uniform-random initial
// positions inside the frame. The random source is seeded from cfg for
// reproducible layouts.
func NewSimulator(g *netgraph.Graph, cfg Config) *Simulator {
	cfg = cfg.withDefaults()

	n := g.NodeCount()
	s := &Simulator{
		graph:      g,
		width:      cfg.Width,
		height:     cfg.Height,
		k:          math.Sqrt(cfg.Width * cfg.Height / float64(max(n, 1))),
		x:          coolingStart,
		iterations: cfg.Iterations,
		pos:        make([]Vec, n+1),
		disp:       make([]Vec, n+1),
	}

	rng := rand.New(rand.NewSource(int64(cfg.Seed)))
	for i := 1; i <= n; i++ {
		s.pos[i] = Vec{
			X: rng.Float64()*s.width - s.width/2,
			Y: rng.Float64()*s.height - s.height/2,
		}
	}

	s.cool()
	return s
}

// Run executes the fixed iteration count synchronously. There is no
// convergence detection; the cooling schedule bounds movement instead.
func (s *Simulator) Run() {
	for i := 0; i < s.iterations; i++ {
		s.iterate()
	}
}

// Position returns the current coordinates of node.
func (s *Simulator) Position(node int) Vec { return s.pos[node] }

// Positions returns all coordinates indexed by node ID; index 0 is unused.
func (s *Simulator) Positions() []Vec { return s.pos }

// Temperature returns the current displacement cap.
func (s *Simulator) Temperature() float64 { return s.temperature }

// IdealDistance returns k = sqrt(frameArea / nodeCount).
func (s *Simulator) IdealDistance() float64 { return s.k }

// iterate performs one simulation step: accumulate repulsive then attractive
// forces into the displacement buffers, apply them capped by the temperature,
// clamp to the frame, and cool.
func (s *Simulator) iterate() {
	n := s.graph.NodeCount()

	// Repulsion: every node pushes every other node away.
	for i := 1; i <= n; i++ {
		s.disp[i] = Vec{}
		for j := 1; j <= n; j++ {
			if i == j {
				continue
			}
			diff := s.pos[i].Sub(s.pos[j])
			s.disp[i] = s.disp[i].Add(diff.Dir().Scale(s.repulsiveForce(diff)))
		}
	}

	// Attraction: each edge pulls its endpoints together.
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if !s.graph.IsConnected(i, j) {
				continue
			}
			diff := s.pos[i].Sub(s.pos[j])
			pull := diff.Dir().Scale(s.attractiveForce(diff))
			s.disp[i] = s.disp[i].Sub(pull)
			s.disp[j] = s.disp[j].Add(pull)
		}
	}

	// Cap displacement by the temperature and keep positions in frame.
	for i := 1; i <= n; i++ {
		s.pos[i] = s.pos[i].Add(s.disp[i].ClampLen(s.temperature))
		s.pos[i].X = math.Min(s.width/2, math.Max(-s.width/2, s.pos[i].X))
		s.pos[i].Y = math.Min(s.height/2, math.Max(-s.height/2, s.pos[i].Y))
	}

	s.cool()
}

// attractiveForce is d²/k for the distance d spanned by diff.
func (s *Simulator) attractiveForce(diff Vec) float64 {
	d := diff.Len()
	return d * d / s.k
}

// repulsiveForce is k²/d, or 0 for coincident nodes.
func (s *Simulator) repulsiveForce(diff Vec) float64 {
	d := diff.Len()
	if d == 0 {
		return 0
	}
	return s.k * s.k / d
}

// cool decrements the counter and lowers the temperature along log10,
// holding the last value once the counter passes 2.
func (s *Simulator) cool() {
	s.x--
	if s.x >= 2 {
		s.temperature = math.Log10(s.x)
	}
}
