package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cszach/Network-Inoculator/pkg/cache"
	"github.com/cszach/Network-Inoculator/pkg/graphio"
	"github.com/cszach/Network-Inoculator/pkg/layout"
)

// layoutCacheTTL bounds how long a cached layout is reused.
const layoutCacheTTL = 30 * 24 * time.Hour

// layoutCommand creates the layout command for computing node placements.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	cfg := c.cfg.SimConfig()

	cmd := &cobra.Command{
		Use:   "layout FILE",
		Short: "Compute a force-directed 2D layout for a contact network",
		Long: `Compute a force-directed 2D layout for a contact network.

The layout command reads an edge list and runs a Fruchterman-Reingold style
force simulation: connected nodes attract, all nodes repel, and a cooling
temperature limits movement each sweep. The result is a layout JSON file that
'visualize' and 'serve' can render.

Layouts are cached locally by graph topology and simulation parameters, so
repeated runs on an unchanged network are instant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], cfg, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().Float64Var(&cfg.Width, "width", cfg.Width, "frame width")
	cmd.Flags().Float64Var(&cfg.Height, "height", cfg.Height, "frame height")
	cmd.Flags().IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "simulation sweeps")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for initial placement")

	return cmd
}

// runLayout loads the network, computes (or recalls) the layout, and writes
// the layout file.
func (c *CLI) runLayout(ctx context.Context, input string, cfg layout.Config, output string, noCache bool) error {
	g, err := graphio.ReadEdgeListFile(input)
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}

	store, err := newCache(noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer store.Close()

	key := cache.LayoutKey(cache.GraphHash(g), cfg)

	var (
		l        graphio.Layout
		cacheHit bool
	)
	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		if cached, err := graphio.UnmarshalLayout(data); err == nil {
			l, cacheHit = cached, true
			c.Logger.Debug("Layout cache hit", "key", key)
		}
	}

	if !cacheHit {
		spinner := newSpinnerWithContext(ctx, "Computing layout...")
		spinner.Start()

		sim := layout.NewSimulator(g, cfg)
		sim.Run()
		l = graphio.SnapshotLayout(g, sim, cfg)

		spinner.Stop()
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if data, err := graphio.MarshalLayout(l); err == nil {
			if err := store.Set(ctx, key, data, layoutCacheTTL); err != nil {
				c.Logger.Debug("Layout cache write failed", "err", err)
			}
		}
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := graphio.WriteLayoutFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(g.NodeCount(), g.EdgeCount(), cacheHit)
	printNewline()
	printNextStep("Render", appName+" visualize "+outputPath)

	return nil
}
