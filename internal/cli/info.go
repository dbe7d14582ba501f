package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info MAP",
		Short: "Print shape kind and cell, open-cell and edge counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMap(cmd, args[0])
			if err != nil {
				return err
			}
			st := newStyles(lipgloss.NewRenderer(cmd.OutOrStdout()))
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, st.title.Render(args[0]))
			for _, kv := range [][2]string{
				{"kind", string(m.Kind())},
				{"cells", strconv.Itoa(m.Len())},
				{"open", strconv.Itoa(m.NodeCount())},
				{"edges", strconv.Itoa(m.EdgeCount())},
			} {
				fmt.Fprintln(out, st.key.Render(kv[0])+st.value.Render(kv[1]))
			}

			return nil
		},
	}
}
