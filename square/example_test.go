// File: square/example_test.go
package square_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/latticegraph/square"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FromValues
////////////////////////////////////////////////////////////////////////////////

// ExampleFromValues builds a small tile map where 0 is a wall and lists the
// open neighbors of the center cell.
// Scenario:
//
//   - 3×3 grid, the cell north of the center is a wall.
//   - Neighbors come back in N, E, S, W order, walls excluded.
func ExampleFromValues() {
	grid := [][]int{
		{1, 0, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	g, _ := square.FromValues(grid, 1)

	center, _ := g.Index(square.Coord{Row: 1, Col: 1})
	nbrs, _ := g.Neighbors(center)
	labels := make([]string, 0, len(nbrs))
	for _, j := range nbrs {
		c, _ := g.Coord(j)
		labels = append(labels, "("+c.String()+")")
	}
	fmt.Println(strings.Join(labels, " "))
	fmt.Println("nodes:", g.NodeCount(), "of", g.Len())

	// Output:
	// (1,2) (2,1) (1,0)
	// nodes: 8 of 9
}

////////////////////////////////////////////////////////////////////////////////
// Example: torus
////////////////////////////////////////////////////////////////////////////////

// ExampleWithTorus shows that a corner cell of a wrapped grid sees the
// opposite borders.
func ExampleWithTorus() {
	g, _ := square.NewGrid(3, 3, square.WithTorus())

	nbrs, _ := g.Neighbors(0)
	labels := make([]string, 0, len(nbrs))
	for _, j := range nbrs {
		c, _ := g.Coord(j)
		labels = append(labels, "("+c.String()+")")
	}
	fmt.Println(strings.Join(labels, " "))

	// Output:
	// (2,0) (0,1) (1,0) (0,2)
}
