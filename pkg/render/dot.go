package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/cszach/Network-Inoculator/pkg/graphio"
)

// DOTOptions configures DOT generation.
type DOTOptions struct {
	// Pinned emits the layout coordinates as fixed neato positions, so
	// Graphviz reproduces the computed placement instead of running its own.
	Pinned bool

	// Scores annotates each node label with a precomputed score.
	// Keys are node IDs; nodes without an entry keep a plain ID label.
	Scores map[int]int
}

// ToDOT converts a layout to Graphviz DOT format as an undirected graph.
// The resulting DOT string can be rasterized with [RenderDOT] or fed to any
// external Graphviz toolchain.
func ToDOT(l graphio.Layout, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	if opts.Pinned {
		buf.WriteString("  layout=neato;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, n := range l.Nodes {
		attrs := fmt.Sprintf("label=%q", nodeLabel(n, opts.Scores))
		if opts.Pinned {
			// Graphviz point units, origin bottom-left, so Y flips.
			attrs += fmt.Sprintf(", pos=\"%.2f,%.2f!\"", n.X+l.Width/2, l.Height/2-n.Y)
		}
		if n.Isolated {
			attrs += ", color=red, penwidth=2"
		} else if n.Degree == 0 {
			attrs += ", fillcolor=lightgrey, fontcolor=grey"
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", n.ID, attrs)
	}

	buf.WriteString("\n")
	for _, e := range l.Edges {
		fmt.Fprintf(&buf, "  %d -- %d;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(n graphio.Node, scores map[int]int) string {
	if score, ok := scores[n.ID]; ok {
		return fmt.Sprintf("%d\n%d", n.ID, score)
	}
	return strconv.Itoa(n.ID)
}

// RenderDOT renders a DOT graph to SVG using Graphviz.
// Returns SVG bytes ready for display or conversion with [ToPDF] or [ToPNG].
func RenderDOT(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz <svg> tag so the viewBox starts at
// the origin and the pixel size matches it. Graphviz emits point-based sizes
// with a translated viewBox, which breaks naive embedding.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
