package hex

import (
	"fmt"

	"github.com/katalvlaran/latticegraph/lattice"
)

// Direction table, clockwise from East. The inverse of d is (d+3) mod 6.
const (
	E  lattice.Direction = iota // (+1, 0)
	SE                          // (0, +1)
	SW                          // (-1, +1)
	W                           // (-1, 0)
	NW                          // (0, -1)
	NE                          // (+1, -1)
)

// directions is indexed by lattice.Direction.
var directions = [6]Axial{
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
	{Q: 0, R: -1},
	{Q: 1, R: -1},
}

var names = [6]string{"E", "SE", "SW", "W", "NW", "NE"}

// Axial is a hex cell in axial coordinates.
type Axial struct {
	Q, R int
}

// S returns the implicit third cube coordinate.
func (a Axial) S() int {
	return -a.Q - a.R
}

// Add returns the component-wise sum of a and b.
func (a Axial) Add(b Axial) Axial {
	return Axial{Q: a.Q + b.Q, R: a.R + b.R}
}

// Scale multiplies both components by k.
func (a Axial) Scale(k int) Axial {
	return Axial{Q: a.Q * k, R: a.R * k}
}

// Cube returns the cube form of a.
func (a Axial) Cube() Cube {
	return Cube{Q: a.Q, R: a.R, S: a.S()}
}

// Offset converts a to pointy-top odd-r offset coordinates. Use
// Layout.FromAxial for the other layouts.
func (a Axial) Offset() Offset {
	return OddR.FromAxial(a)
}

// String renders the coordinate as "q,r".
func (a Axial) String() string {
	return fmt.Sprintf("%d,%d", a.Q, a.R)
}

// Cube is a hex cell in cube coordinates; Q+R+S is always zero for a valid cell.
type Cube struct {
	Q, R, S int
}

// Axial drops the redundant S component.
func (c Cube) Axial() Axial {
	return Axial{Q: c.Q, R: c.R}
}

// Valid reports whether Q+R+S == 0.
func (c Cube) Valid() bool {
	return c.Q+c.R+c.S == 0
}

// Offset is a (col, row) position in a rectangular offset layout. Its
// meaning depends on the Layout it was produced by.
type Offset struct {
	Col, Row int
}

// AxialFromOffset converts odd-r offset coordinates to axial.
func AxialFromOffset(o Offset) Axial {
	return OddR.ToAxial(o)
}

// Graph is a lattice graph over axial coordinates.
type Graph = lattice.Graph[Axial]

// System is the axial hex coordinate system. The zero value is ready to use.
type System struct{}

// Directions returns 6.
func (System) Directions() int { return len(directions) }

// Step adds the unit vector of d to c. Directions outside the table leave c unchanged.
func (System) Step(c Axial, d lattice.Direction) Axial {
	if int(d) >= len(directions) {
		return c
	}

	return c.Add(directions[d])
}

// Inverse returns the opposite direction.
func (System) Inverse(d lattice.Direction) lattice.Direction {
	return (d + 3) % 6
}

// Name returns the compass label of d.
func (System) Name(d lattice.Direction) string {
	if int(d) >= len(names) {
		return "?"
	}

	return names[d]
}

// Unit returns the axial unit vector of d, or the origin for an unknown direction.
func Unit(d lattice.Direction) Axial {
	if int(d) >= len(directions) {
		return Axial{}
	}

	return directions[d]
}

// ShapeOption configures Parallelogram and Rectangle shapes.
type ShapeOption func(*shapeConfig)

type shapeConfig struct {
	wrap      wrap
	layout    Layout
	hasLayout bool
}

type wrap struct {
	q, r bool
}

// WithWrapQ wraps the q axis (Parallelogram) or the columns (Rectangle).
func WithWrapQ() ShapeOption {
	return func(c *shapeConfig) { c.wrap.q = true }
}

// WithWrapR wraps the r axis (Parallelogram) or the rows (Rectangle).
func WithWrapR() ShapeOption {
	return func(c *shapeConfig) { c.wrap.r = true }
}

// WithLayout sets the offset layout of a Rectangle. A Parallelogram has no
// offset layout and rejects it.
func WithLayout(l Layout) ShapeOption {
	return func(c *shapeConfig) {
		c.layout = l
		c.hasLayout = true
	}
}
