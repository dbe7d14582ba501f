package square

import (
	"fmt"
	"math"

	"github.com/katalvlaran/latticegraph/lattice"
)

// Shape is a Rows×Cols rectangle with an independent wrap flag per axis.
// It is an immutable value; two shapes are equal iff extents and wrap flags match.
type Shape struct {
	rows, cols         int
	wrapRows, wrapCols bool
}

// NewShape validates the extents and applies wrap options.
// Returns lattice.ErrInvalidShape if rows or cols is not positive or if
// rows×cols does not fit in an int.
func NewShape(rows, cols int, opts ...ShapeOption) (Shape, error) {
	if rows <= 0 || cols <= 0 {
		return Shape{}, fmt.Errorf("%w: square extent %dx%d", lattice.ErrInvalidShape, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return Shape{}, fmt.Errorf("%w: square extent %dx%d overflows the index range", lattice.ErrInvalidShape, rows, cols)
	}
	s := Shape{rows: rows, cols: cols}
	for _, opt := range opts {
		opt(&s)
	}

	return s, nil
}

// Rows returns the row extent.
func (s Shape) Rows() int { return s.rows }

// Cols returns the column extent.
func (s Shape) Cols() int { return s.cols }

// WrapRows reports whether the row axis wraps.
func (s Shape) WrapRows() bool { return s.wrapRows }

// WrapCols reports whether the column axis wraps.
func (s Shape) WrapCols() bool { return s.wrapCols }

// Len returns Rows×Cols.
func (s Shape) Len() int {
	return s.rows * s.cols
}

// Normalize reduces wrapping axes modulo their extent. Bounded axes are
// returned unchanged, never clamped.
func (s Shape) Normalize(c Coord) Coord {
	if s.wrapRows {
		c.Row = mod(c.Row, s.rows)
	}
	if s.wrapCols {
		c.Col = mod(c.Col, s.cols)
	}

	return c
}

// InBounds reports whether c lies inside the rectangle after wrap reduction.
// Complexity: O(1).
func (s Shape) InBounds(c Coord) bool {
	c = s.Normalize(c)

	return c.Row >= 0 && c.Row < s.rows && c.Col >= 0 && c.Col < s.cols
}

// IndexOf maps c to its row-major index: row*Cols + col.
func (s Shape) IndexOf(c Coord) (int, bool) {
	c = s.Normalize(c)
	if c.Row < 0 || c.Row >= s.rows || c.Col < 0 || c.Col >= s.cols {
		return 0, false
	}

	return c.Row*s.cols + c.Col, true
}

// CoordOf converts a row-major index back to (row, col).
func (s Shape) CoordOf(i int) Coord {
	return Coord{Row: i / s.cols, Col: i % s.cols}
}

// Distance returns the Manhattan distance between a and b, taking the
// shorter way around on wrapping axes. It is an admissible A* heuristic for
// unit edge weights.
func (s Shape) Distance(a, b Coord) int {
	a, b = s.Normalize(a), s.Normalize(b)
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	if s.wrapRows && s.rows-dr < dr {
		dr = s.rows - dr
	}
	if s.wrapCols && s.cols-dc < dc {
		dc = s.cols - dc
	}

	return dr + dc
}

// Manhattan returns |Δrow| + |Δcol| ignoring any wrap.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}

	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
