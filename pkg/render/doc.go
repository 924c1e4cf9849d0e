// Package render turns computed layouts into images.
//
// # Overview
//
// This package is the visual end of the pipeline. A [graphio.Layout]
// produced by the force simulator goes in; SVG, DOT, PDF, or PNG comes out:
//
//   - [RenderSVG] draws the layout directly as an SVG document, coloring
//     nodes by connected component and highlighting the last isolated node.
//   - [ToDOT] and [RenderDOT] go through Graphviz instead, either pinning
//     the computed coordinates (neato) or letting Graphviz place nodes.
//   - [ToPDF] and [ToPNG] convert any SVG to other formats using the
//     external rsvg-convert tool (from librsvg).
//
// A typical export:
//
//	svg := render.RenderSVG(l, render.WithLabels())
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// [graphio.Layout]: github.com/cszach/Network-Inoculator/pkg/graphio
package render
