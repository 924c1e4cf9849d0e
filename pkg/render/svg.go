package render

import (
	"bytes"
	"fmt"

	"github.com/cszach/Network-Inoculator/pkg/graphio"
	"github.com/cszach/Network-Inoculator/pkg/netgraph"
)

// palette assigns one fill color per connected component, cycling when the
// graph fragments into more components than colors.
var palette = []string{
	"#4C9AFF", "#57D9A3", "#FFAB00", "#F66D9B", "#9F8FEF",
	"#79E2F2", "#FF8F73", "#8BC34A", "#E2B203", "#B8ACF6",
}

const (
	orphanFill     = "#D5D9DE"
	orphanStroke   = "#9AA0A6"
	isolatedStroke = "#DE350B"
	edgeStroke     = "#8993A4"
	labelColor     = "#172B4D"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	nodeRadius float64
	showLabels bool
}

// WithNodeRadius sets the circle radius used for nodes (default 12).
func WithNodeRadius(r float64) SVGOption {
	return func(s *svgRenderer) { s.nodeRadius = r }
}

// WithLabels draws each node's ID inside its circle.
func WithLabels() SVGOption {
	return func(s *svgRenderer) { s.showLabels = true }
}

// RenderSVG draws a computed layout as a standalone SVG document.
//
// Nodes in the same connected component share a fill color. Nodes with no
// remaining connections are dimmed grey, and the most recently isolated node
// gets a red outline so the effect of an isolation step is visible at a
// glance. Layout coordinates are frame-centered, so everything is translated
// by half the frame before drawing.
func RenderSVG(l graphio.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{nodeRadius: 12}
	for _, opt := range opts {
		opt(&r)
	}

	component := componentColors(l)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)
	buf.WriteString(`  <rect width="100%" height="100%" fill="white"/>` + "\n")

	pos := make(map[int][2]float64, len(l.Nodes))
	for _, n := range l.Nodes {
		pos[n.ID] = [2]float64{n.X + l.Width/2, n.Y + l.Height/2}
	}

	for _, e := range l.Edges {
		from, to := pos[e.From], pos[e.To]
		fmt.Fprintf(&buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1.5"/>`+"\n",
			from[0], from[1], to[0], to[1], edgeStroke)
	}

	for _, n := range l.Nodes {
		p := pos[n.ID]
		fill, stroke, strokeWidth := nodeStyle(n, component[n.ID])
		fmt.Fprintf(&buf, `  <circle id="node-%d" cx="%.2f" cy="%.2f" r="%.1f" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
			n.ID, p[0], p[1], r.nodeRadius, fill, stroke, strokeWidth)

		if r.showLabels {
			fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="%.0f" fill="%s">%d</text>`+"\n",
				p[0], p[1], r.nodeRadius, labelColor, n.ID)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func nodeStyle(n graphio.Node, fill string) (string, string, float64) {
	switch {
	case n.Isolated:
		return orphanFill, isolatedStroke, 3
	case n.Degree == 0:
		return orphanFill, orphanStroke, 1
	default:
		return fill, "#44546F", 1.5
	}
}

// componentColors rebuilds the graph topology from the layout and maps each
// node ID to its component's palette color.
func componentColors(l graphio.Layout) map[int]string {
	g := netgraph.New(len(l.Nodes))

	id := make(map[int]int, len(l.Nodes))
	for i, n := range l.Nodes {
		id[n.ID] = i + 1
	}
	for _, e := range l.Edges {
		g.Connect(id[e.From], id[e.To])
	}

	colors := make(map[int]string, len(l.Nodes))
	for ci, comp := range g.Components() {
		for _, member := range comp {
			colors[l.Nodes[member-1].ID] = palette[ci%len(palette)]
		}
	}
	return colors
}
