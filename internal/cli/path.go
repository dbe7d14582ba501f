package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/latticegraph/mapfile"
)

const (
	algoAStar    = "astar"
	algoDijkstra = "dijkstra"
)

func newPathCmd() *cobra.Command {
	var (
		algo  string
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "path MAP FROM TO",
		Short: "Find a cheapest path between two cells",
		Long:  `Find a cheapest path between two open cells. Edge cost is the mean of the endpoint glyph costs.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMap(cmd, args[0])
			if err != nil {
				return err
			}
			from, err := openCell(m, args[1])
			if err != nil {
				return err
			}
			to, err := openCell(m, args[2])
			if err != nil {
				return err
			}

			start := time.Now()
			cells, cost, err := shortestPath(m, from, to, algo)
			if err != nil {
				return err
			}
			elapsed(loggerFrom(cmd.Context()), start, "solved path", "algo", algo, "cells", len(cells), "cost", cost)

			out := cmd.OutOrStdout()
			st := newStyles(lipgloss.NewRenderer(out))
			if !plain {
				fmt.Fprint(out, renderMap(m, cells, st))
			}
			for k, i := range cells {
				if k > 0 {
					fmt.Fprint(out, " ")
				}
				fmt.Fprint(out, m.Label(i))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, st.key.Render("cost")+st.value.Render(fmt.Sprintf("%g", cost)))

			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", algoAStar, "search algorithm: astar or dijkstra")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the path without drawing the map")

	return cmd
}

// shortestPath runs the selected gonum search from one open cell to another.
func shortestPath(m *mapfile.Map, from, to int, algo string) ([]int, float64, error) {
	g := m.Graph()
	var (
		nodes []graph.Node
		cost  float64
	)
	switch algo {
	case algoDijkstra:
		nodes, cost = path.DijkstraFrom(g.Node(int64(from)), g).To(int64(to))
	case algoAStar:
		sp, _ := path.AStar(g.Node(int64(from)), g.Node(int64(to)), g, m.Heuristic())
		nodes, cost = sp.To(int64(to))
	default:
		return nil, 0, fmt.Errorf("%w: %q", errUnknownAlgo, algo)
	}
	if len(nodes) == 0 || math.IsInf(cost, 1) {
		return nil, 0, fmt.Errorf("%w: %s to %s", errNoPath, m.Label(from), m.Label(to))
	}
	cells := make([]int, len(nodes))
	for k, n := range nodes {
		cells[k] = int(n.ID())
	}

	return cells, cost, nil
}
