package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cszach/Network-Inoculator/pkg/graphio"
	"github.com/cszach/Network-Inoculator/pkg/influence"
	"github.com/cszach/Network-Inoculator/pkg/netgraph"
)

// watchCommand creates the watch command, an interactive isolation stepper.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		useDegree bool
		radius    int
	)

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Step through isolations interactively",
		Long: `Step through isolations interactively.

Watch loads the network and waits: every press of space or enter isolates the
current highest scorer and shows what changed, including how many connected
components the network has fragmented into. Press q to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(args[0], influence.Options{
				UseDegree: useDegree,
				Radius:    radius,
			})
		},
	}

	cmd.Flags().BoolVarP(&useDegree, "degree", "d", false, "score by degree instead of collective influence")
	cmd.Flags().IntVarP(&radius, "radius", "r", c.cfg.Radius, "collective influence ball radius")

	return cmd
}

func (c *CLI) runWatch(input string, opts influence.Options) error {
	g, err := graphio.ReadEdgeListFile(input)
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}

	m := newWatchModel(g, opts)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	if wm, ok := final.(watchModel); ok {
		printSuccess("Isolated %d of %d nodes", len(wm.history), g.NodeCount())
	}
	return nil
}

// watchHistoryLimit caps how many past rounds stay on screen.
const watchHistoryLimit = 10

// watchModel is the bubbletea model for the isolation stepper.
type watchModel struct {
	graph   *netgraph.Graph
	engine  *influence.Engine
	opts    influence.Options
	history []influence.Result
	done    bool
}

func newWatchModel(g *netgraph.Graph, opts influence.Options) watchModel {
	return watchModel{
		graph:  g,
		engine: influence.NewEngine(g),
		opts:   opts,
	}
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "enter":
			if m.done {
				return m, tea.Quit
			}
			result, err := m.engine.Isolate(m.opts)
			if err != nil {
				if errors.Is(err, influence.ErrNetworkInoculated) {
					m.done = true
					return m, nil
				}
				m.done = true
				return m, tea.Quit
			}
			m.history = append(m.history, result)
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	var b []byte

	b = fmt.Appendf(b, "%s\n", StyleTitle.Render("Network Inoculation"))
	b = fmt.Appendf(b, "%s\n\n", StyleDim.Render("space/enter isolate  q quit"))

	components := 0
	for _, comp := range m.graph.Components() {
		if len(comp) > 1 || m.graph.Degree(comp[0]) > 0 {
			components++
		}
	}
	b = fmt.Appendf(b, "%s %s\n\n",
		StyleDim.Render("nodes:"),
		StyleValue.Render(fmt.Sprintf("%d   edges: %d   components: %d   isolated: %d",
			m.graph.NodeCount(), m.graph.EdgeCount(), components, len(m.history))))

	start := 0
	if len(m.history) > watchHistoryLimit {
		start = len(m.history) - watchHistoryLimit
		b = fmt.Appendf(b, "%s\n", StyleDim.Render(fmt.Sprintf("  … %d earlier rounds", start)))
	}
	for i := start; i < len(m.history); i++ {
		r := m.history[i]
		line := fmt.Sprintf("  round %-3d isolated node %-4d score %d (%s)", i+1, r.Node, r.Score, r.Unit)
		if i == len(m.history)-1 {
			b = fmt.Appendf(b, "%s\n", StyleHighlight.Render(line))
		} else {
			b = fmt.Appendf(b, "%s\n", StyleValue.Render(line))
		}
	}

	if m.done {
		b = fmt.Appendf(b, "\n%s\n", StyleSuccess.Render("✓ Network inoculated: no influential node remains"))
	}

	return string(b)
}
