package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newNeighborsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors MAP CELL",
		Short: "List the open neighbors of a cell",
		Long:  `List the open neighbors of CELL in direction order. CELL is "row,col" on square maps and "q,r" on hex maps.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMap(cmd, args[0])
			if err != nil {
				return err
			}
			i, ok := m.Index(args[1])
			if !ok {
				return fmt.Errorf("%w: %q", errUnknownCell, args[1])
			}
			nbrs, err := m.Neighbors(i)
			if err != nil {
				return err
			}
			loggerFrom(cmd.Context()).Debug("neighbors", "cell", m.Label(i), "count", len(nbrs))

			st := newStyles(lipgloss.NewRenderer(cmd.OutOrStdout()))
			for _, n := range nbrs {
				fmt.Fprintln(cmd.OutOrStdout(), st.key.Render(n.Direction)+st.value.Render(n.Label))
			}

			return nil
		},
	}
}
