package square

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/latticegraph/lattice"
)

// ErrNonRectangular indicates value rows of differing lengths.
var ErrNonRectangular = errors.New("square: all rows must have the same length")

// Direction table: N, E, S, W. The inverse of d is (d+2) mod 4.
const (
	North lattice.Direction = iota // row - 1
	East                           // col + 1
	South                          // row + 1
	West                           // col - 1
)

// offsets is indexed by direction: {dRow, dCol}.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

var names = [4]string{"N", "E", "S", "W"}

// Coord is a square-grid cell in offset coordinates.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Graph is a lattice graph over square coordinates.
type Graph = lattice.Graph[Coord]

// System is the square coordinate system. The zero value is ready to use.
type System struct{}

// Directions returns 4.
func (System) Directions() int { return len(offsets) }

// Step adds the unit offset of d to c. Directions outside the table leave c unchanged.
func (System) Step(c Coord, d lattice.Direction) Coord {
	if int(d) >= len(offsets) {
		return c
	}
	o := offsets[d]

	return Coord{Row: c.Row + o[0], Col: c.Col + o[1]}
}

// Inverse returns the opposite direction.
func (System) Inverse(d lattice.Direction) lattice.Direction {
	return (d + 2) % 4
}

// Name returns "N", "E", "S" or "W".
func (System) Name(d lattice.Direction) string {
	if int(d) >= len(names) {
		return "?"
	}

	return names[d]
}

// ShapeOption configures wrap behavior of a Shape.
type ShapeOption func(*Shape)

// WithWrapRows makes the row axis toroidal: row -1 is row Rows-1.
func WithWrapRows() ShapeOption {
	return func(s *Shape) { s.wrapRows = true }
}

// WithWrapCols makes the column axis toroidal: col -1 is col Cols-1.
func WithWrapCols() ShapeOption {
	return func(s *Shape) { s.wrapCols = true }
}

// WithTorus wraps both axes.
func WithTorus() ShapeOption {
	return func(s *Shape) {
		s.wrapRows = true
		s.wrapCols = true
	}
}
