package gonumgraph_test

import (
	"fmt"

	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/latticegraph/gonumgraph"
	"github.com/katalvlaran/latticegraph/square"
)

// ExampleNew runs gonum Dijkstra across the seam of a 1×5 cylinder.
func ExampleNew() {
	lg, _ := square.NewGrid(1, 5, square.WithWrapCols())
	g := gonumgraph.New(lg)

	nodes, w := path.DijkstraFrom(g.Node(0), g).To(3)
	for _, n := range nodes {
		c, _ := lg.Coord(int(n.ID()))
		fmt.Print(c, " ")
	}
	fmt.Println(w)
	// Output:
	// 0,0 0,4 0,3 2
}
