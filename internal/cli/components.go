package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/graph/topo"
)

func newComponentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components MAP",
		Short: "List connected groups of open cells, largest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMap(cmd, args[0])
			if err != nil {
				return err
			}
			comps := topo.ConnectedComponents(m.Graph())
			sizes := make([]int, len(comps))
			for k, c := range comps {
				sizes[k] = len(c)
			}
			sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
			loggerFrom(cmd.Context()).Debug("components", "count", len(comps))

			st := newStyles(lipgloss.NewRenderer(cmd.OutOrStdout()))
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, st.key.Render("count")+st.value.Render(fmt.Sprint(len(comps))))
			fmt.Fprintln(out, st.key.Render("sizes")+st.value.Render(fmt.Sprint(sizes)))

			return nil
		},
	}
}
