package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cszach/Network-Inoculator/pkg/graphio"
	"github.com/cszach/Network-Inoculator/pkg/render"
)

// Supported visualize output formats.
const (
	formatSVG = "svg"
	formatDOT = "dot"
	formatPDF = "pdf"
	formatPNG = "png"
)

var allFormats = []string{formatSVG, formatDOT, formatPDF, formatPNG}

// visualizeCommand creates the visualize command for rendering from a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		labels     bool
		graphviz   bool
	)

	cmd := &cobra.Command{
		Use:   "visualize LAYOUT.json",
		Short: "Render a computed layout as SVG, DOT, PDF, or PNG",
		Long: `Render a computed layout as SVG, DOT, PDF, or PNG.

The visualize command takes a layout file (produced by 'layout') and renders
it. The layout contains all positioning information, so this step is purely
about drawing: nodes are colored by connected component, orphaned nodes are
dimmed, and the most recently isolated node is outlined in red.

The default SVG is drawn directly. Pass --graphviz to rasterize through
Graphviz instead, pinning the layout's coordinates. PDF and PNG conversion
requires librsvg (rsvg-convert).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			for _, f := range formats {
				if !slices.Contains(allFormats, f) {
					return fmt.Errorf("unknown format %q (supported: %s)", f, strings.Join(allFormats, ", "))
				}
			}
			return c.runVisualize(cmd.Context(), args[0], formats, output, labels, graphviz)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, pdf, png (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&labels, "labels", false, "draw node IDs inside circles")
	cmd.Flags().BoolVar(&graphviz, "graphviz", false, "rasterize through Graphviz with pinned positions")

	return cmd
}

func (c *CLI) runVisualize(ctx context.Context, input string, formats []string, output string, labels, useGraphviz bool) error {
	l, err := graphio.ReadLayoutFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	svg, err := c.renderSVG(l, labels, useGraphviz)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}

	artifacts := make(map[string][]byte, len(formats))
	for _, f := range formats {
		data, err := c.renderFormat(f, l, svg)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return fmt.Errorf("render %s: %w", f, err)
		}
		artifacts[f] = data
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}

	printSuccess("Visualization complete")
	for _, f := range formats {
		path := base + "." + f
		if output != "" && len(formats) == 1 {
			path = output
		}
		if err := os.WriteFile(path, artifacts[f], 0644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(len(l.Nodes), len(l.Edges), false)

	return nil
}

// renderSVG produces the SVG every raster format derives from.
func (c *CLI) renderSVG(l graphio.Layout, labels, useGraphviz bool) ([]byte, error) {
	if useGraphviz {
		dot := render.ToDOT(l, render.DOTOptions{Pinned: true})
		svg, err := render.RenderDOT(dot)
		if err != nil {
			return nil, fmt.Errorf("graphviz: %w", err)
		}
		return svg, nil
	}

	var opts []render.SVGOption
	if labels {
		opts = append(opts, render.WithLabels())
	}
	return render.RenderSVG(l, opts...), nil
}

func (c *CLI) renderFormat(format string, l graphio.Layout, svg []byte) ([]byte, error) {
	switch format {
	case formatSVG:
		return svg, nil
	case formatDOT:
		return []byte(render.ToDOT(l, render.DOTOptions{Pinned: true})), nil
	case formatPDF:
		return render.ToPDF(svg)
	case formatPNG:
		return render.ToPNG(svg, 2.0)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	return strings.Split(s, ",")
}
