package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latticegraph/mapfile"
)

var (
	version = "dev"
	commit  string
	date    string
)

var (
	errUnknownCell = errors.New("unknown cell")
	errClosedCell  = errors.New("cell is blocked")
	errNoPath      = errors.New("no path")
	errUnknownAlgo = errors.New("unknown algorithm")
)

// SetVersion sets the values printed by --version. The main package passes
// values injected with -ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the latticegraph CLI under ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "latticegraph",
		Short:        "Query square and hex lattice maps as graphs",
		Long:         `latticegraph loads a square or hexagonal map from TOML or YAML and answers adjacency, shortest-path and connectivity queries on it.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), verbose)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("latticegraph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newInfoCmd())
	root.AddCommand(newNeighborsCmd())
	root.AddCommand(newPathCmd())
	root.AddCommand(newComponentsCmd())

	return root
}

// openCell resolves a "a,b" label to an open cell index.
func openCell(m *mapfile.Map, label string) (int, error) {
	i, ok := m.Index(label)
	if !ok {
		return 0, fmt.Errorf("%w: %q", errUnknownCell, label)
	}
	if !m.IsOpen(i) {
		return 0, fmt.Errorf("%w: %s", errClosedCell, m.Label(i))
	}

	return i, nil
}
