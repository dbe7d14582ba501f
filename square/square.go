package square

import (
	"fmt"

	"github.com/katalvlaran/latticegraph/lattice"
)

// New builds a square lattice graph over shape.
// Errors are those of lattice.New.
func New(shape Shape, opts ...lattice.Option) (*Graph, error) {
	return lattice.New[Coord](shape, System{}, opts...)
}

// NewGrid is a shorthand for NewShape followed by New.
func NewGrid(rows, cols int, opts ...ShapeOption) (*Graph, error) {
	s, err := NewShape(rows, cols, opts...)
	if err != nil {
		return nil, err
	}

	return New(s)
}

// FromValues builds a graph from a non-empty, rectangular grid of cell values
// indexed values[row][col]. Cells with value >= threshold are present, the
// rest are masked out. Each cell's value becomes its node weight.
// Returns lattice.ErrInvalidShape if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func FromValues(values [][]int, threshold int, opts ...ShapeOption) (*Graph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: empty value grid", lattice.ErrInvalidShape)
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	shape, err := NewShape(h, w, opts...)
	if err != nil {
		return nil, err
	}
	mask, err := lattice.NewMask(shape.Len())
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if values[y][x] < threshold {
				_ = mask.SetPresent(y*w+x, false)
			}
		}
	}

	return New(shape,
		lattice.WithMask(mask),
		lattice.WithNodeWeights(func(i int) float64 {
			return float64(values[i/w][i%w])
		}),
	)
}
