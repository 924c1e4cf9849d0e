package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cszach/Network-Inoculator/pkg/graphio"
	"github.com/cszach/Network-Inoculator/pkg/influence"
)

// rankCommand creates the rank command for scoring nodes without mutating
// the network.
func (c *CLI) rankCommand() *cobra.Command {
	var (
		radius int
		top    int
	)

	cmd := &cobra.Command{
		Use:   "rank FILE",
		Short: "Rank nodes by collective influence",
		Long: `Rank nodes by collective influence.

Scores every node of the network and prints a table of degree and collective
influence, highest influence first. Ties order by ascending node ID. The
network itself is not modified, so rank is a safe way to preview what
'inoculate' would target.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRank(args[0], radius, top)
		},
	}

	cmd.Flags().IntVarP(&radius, "radius", "r", c.cfg.Radius, "collective influence ball radius")
	cmd.Flags().IntVar(&top, "top", 0, "show only the top N nodes (0 means all)")

	return cmd
}

func (c *CLI) runRank(input string, radius, top int) error {
	if radius < 1 {
		return fmt.Errorf("radius %d must be at least 1", radius)
	}

	g, err := graphio.ReadEdgeListFile(input)
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}

	calc := influence.NewCalculator(g)
	calc.ComputeAll(radius)

	type row struct {
		node, degree, ci int
	}
	rows := make([]row, 0, g.NodeCount())
	for i := 1; i <= g.NodeCount(); i++ {
		rows = append(rows, row{node: i, degree: calc.Degree(i), ci: calc.Cached(i)})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ci > rows[j].ci
	})
	if top > 0 && top < len(rows) {
		rows = rows[:top]
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			strconv.Itoa(r.node),
			strconv.Itoa(r.degree),
			strconv.Itoa(r.ci),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Node", "Degree", fmt.Sprintf("Influence (r=%d)", radius)).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	fmt.Println(t.Render())
	printStats(g.NodeCount(), g.EdgeCount(), false)
	return nil
}
