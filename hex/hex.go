package hex

import "github.com/katalvlaran/latticegraph/lattice"

// New builds a hex lattice graph over any of Hexagon, Parallelogram or
// Rectangle. Errors are those of lattice.New.
func New(shape lattice.Shape[Axial], opts ...lattice.Option) (*Graph, error) {
	return lattice.New[Axial](shape, System{}, opts...)
}
