package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cszach/Network-Inoculator/pkg/graphio"
	"github.com/cszach/Network-Inoculator/pkg/influence"
)

// inoculateCommand creates the inoculate command, the core analysis loop.
func (c *CLI) inoculateCommand() *cobra.Command {
	var (
		useDegree bool
		radius    int
		trace     bool
	)

	cmd := &cobra.Command{
		Use:   "inoculate NUM_NODES FILE",
		Short: "Isolate the NUM_NODES most influential nodes of a contact network",
		Long: `Isolate the NUM_NODES most influential nodes of a contact network.

The network is read as a whitespace-separated edge list of 1-based node ID
pairs; the highest ID seen determines the network's size. Each round scores
every node, picks the highest scorer (ties keep the lowest ID), and removes
all of its edges. One "<node> <score>" line is printed per round.

Scoring defaults to collective influence over a ball of radius 2; pass -d to
score by raw degree instead. The loop stops after NUM_NODES rounds, or early
once no node with a positive score remains.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("NUM_NODES %q must be a positive integer", args[0])
			}
			return c.runInoculate(cmd.Context(), n, args[1], influence.Options{
				UseDegree: useDegree,
				Radius:    radius,
			}, trace, os.Stdout)
		},
	}

	cmd.Flags().BoolVarP(&useDegree, "degree", "d", false, "score by degree instead of collective influence")
	cmd.Flags().IntVarP(&radius, "radius", "r", c.cfg.Radius, "collective influence ball radius")
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "print remaining connected nodes after each round")

	return cmd
}

// runInoculate loads the network and drives up to count isolation rounds,
// stopping early once the network is inoculated.
func (c *CLI) runInoculate(ctx context.Context, count int, input string, opts influence.Options, trace bool, out io.Writer) error {
	g, err := graphio.ReadEdgeListFile(input)
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}
	c.Logger.Debug("Loaded network", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	opts.Output = out
	if trace {
		opts.Trace = out
	}

	engine := influence.NewEngine(g)
	p := newProgress(c.Logger)

	isolated := 0
	for isolated < count {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := engine.Isolate(opts); err != nil {
			if errors.Is(err, influence.ErrNetworkInoculated) {
				break
			}
			return err
		}
		isolated++
	}

	p.done(fmt.Sprintf("Isolated %d of %d nodes", isolated, count))
	return nil
}
