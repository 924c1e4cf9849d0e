package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cszach/Network-Inoculator/internal/server"
	"github.com/cszach/Network-Inoculator/pkg/graphio"
)

// serveCommand creates the serve command for the HTTP viewer.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr   string
		radius int
	)

	cmd := &cobra.Command{
		Use:   "serve FILE",
		Short: "Serve a contact network over HTTP",
		Long: `Serve a contact network over HTTP.

The server loads the network once and keeps it in memory. Endpoints:

  GET  /api/graph   current topology as JSON
  GET  /api/scores  per-node degree and collective influence
  POST /api/isolate isolate the current highest scorer
  GET  /view.svg    rendered view of the current network

Isolations mutate the served network; restart to reset it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if radius < 1 {
				return fmt.Errorf("radius %d must be at least 1", radius)
			}
			g, err := graphio.ReadEdgeListFile(args[0])
			if err != nil {
				return fmt.Errorf("load network: %w", err)
			}

			printInfo("Serving %s on %s", args[0], addr)
			printNextStep("View", fmt.Sprintf("curl http://localhost%s/api/graph", addr))

			srv := server.New(g, c.cfg.SimConfig(), radius, c.Logger)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVarP(&radius, "radius", "r", c.cfg.Radius, "collective influence ball radius")

	return cmd
}
