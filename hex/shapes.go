package hex

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/latticegraph/lattice"
)

// Hexagon is the set of cells within Radius steps of the origin.
// Cells are indexed by r ascending, then q ascending. It never wraps.
type Hexagon struct {
	radius int
}

// NewHexagon returns a hexagon of the given radius; radius 0 is a single cell.
// Returns lattice.ErrInvalidShape for a negative radius or one whose cell
// count does not fit in an int.
func NewHexagon(radius int) (Hexagon, error) {
	if radius < 0 {
		return Hexagon{}, fmt.Errorf("%w: hexagon radius %d", lattice.ErrInvalidShape, radius)
	}
	if radius >= math.MaxInt/3 || radius > (math.MaxInt/3)/(radius+1) {
		return Hexagon{}, fmt.Errorf("%w: hexagon radius %d overflows the index range", lattice.ErrInvalidShape, radius)
	}

	return Hexagon{radius: radius}, nil
}

// Radius returns the hexagon's radius.
func (h Hexagon) Radius() int { return h.radius }

// Len returns 3R(R+1)+1.
func (h Hexagon) Len() int {
	return hexagonCount(h.radius)
}

// Normalize returns c unchanged.
func (h Hexagon) Normalize(c Axial) Axial {
	return c
}

// InBounds reports whether c is within Radius of the origin.
func (h Hexagon) InBounds(c Axial) bool {
	return abs(c.Q) <= h.radius && abs(c.R) <= h.radius && abs(c.S()) <= h.radius
}

// IndexOf returns rowStart(r) + q - qmin(r).
// Complexity: O(1).
func (h Hexagon) IndexOf(c Axial) (int, bool) {
	if !h.InBounds(c) {
		return 0, false
	}

	return h.rowStart(c.R) + c.Q - h.qMin(c.R), true
}

// CoordOf locates the row of i by binary search over row starts.
// Complexity: O(log R).
func (h Hexagon) CoordOf(i int) Axial {
	rows := 2*h.radius + 1
	k := sort.Search(rows, func(k int) bool {
		return h.rowStart(k-h.radius) > i
	}) - 1
	r := k - h.radius

	return Axial{Q: h.qMin(r) + i - h.rowStart(r), R: r}
}

func (h Hexagon) qMin(r int) int {
	return max(-h.radius, -r-h.radius)
}

// rowStart is the index of the first cell of row r, in closed form.
func (h Hexagon) rowStart(r int) int {
	R := h.radius
	if r <= 0 {
		m := r + R
		return m*(R+1) + m*(m-1)/2
	}
	top := (R+1)*(R+1) + (R+1)*R/2
	k := r - 1

	return top + k*(2*R+1) - k*(k+1)/2
}

// Parallelogram covers q in [0,W) and r in [0,H). Each axis may wrap, which
// makes it a hexagonal torus.
type Parallelogram struct {
	w, h int
	wrap wrap
}

// NewParallelogram returns a W×H parallelogram.
// Returns lattice.ErrInvalidShape if w or h is not positive, or if a layout
// is given.
func NewParallelogram(w, h int, opts ...ShapeOption) (Parallelogram, error) {
	if w <= 0 || h <= 0 {
		return Parallelogram{}, fmt.Errorf("%w: parallelogram extent %dx%d", lattice.ErrInvalidShape, w, h)
	}
	if h > math.MaxInt/w {
		return Parallelogram{}, fmt.Errorf("%w: parallelogram extent %dx%d overflows the index range", lattice.ErrInvalidShape, w, h)
	}
	var cfg shapeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasLayout {
		return Parallelogram{}, fmt.Errorf("%w: a parallelogram has no offset layout", lattice.ErrInvalidShape)
	}

	return Parallelogram{w: w, h: h, wrap: cfg.wrap}, nil
}

// Width returns the q extent.
func (p Parallelogram) Width() int { return p.w }

// Height returns the r extent.
func (p Parallelogram) Height() int { return p.h }

// WrapQ reports whether the q axis wraps.
func (p Parallelogram) WrapQ() bool { return p.wrap.q }

// WrapR reports whether the r axis wraps.
func (p Parallelogram) WrapR() bool { return p.wrap.r }

// Len returns W×H.
func (p Parallelogram) Len() int {
	return p.w * p.h
}

// Normalize reduces wrapping axes modulo their extent.
func (p Parallelogram) Normalize(c Axial) Axial {
	if p.wrap.q {
		c.Q = mod(c.Q, p.w)
	}
	if p.wrap.r {
		c.R = mod(c.R, p.h)
	}

	return c
}

// InBounds reports whether c lies inside after wrap reduction.
func (p Parallelogram) InBounds(c Axial) bool {
	_, ok := p.IndexOf(c)

	return ok
}

// IndexOf returns r*W + q.
func (p Parallelogram) IndexOf(c Axial) (int, bool) {
	c = p.Normalize(c)
	if c.Q < 0 || c.Q >= p.w || c.R < 0 || c.R >= p.h {
		return 0, false
	}

	return c.R*p.w + c.Q, true
}

// CoordOf returns (i mod W, i / W).
func (p Parallelogram) CoordOf(i int) Axial {
	return Axial{Q: i % p.w, R: i / p.w}
}

// Rectangle is a W×H map in an offset Layout (odd-r unless configured),
// addressed with axial coordinates. Either axis may wrap, except that the
// shoved axis must have an even extent so that its parity survives the wrap:
// rows in a pointy-top layout, columns in a flat-top one.
type Rectangle struct {
	w, h   int
	wrap   wrap
	layout Layout
}

// NewRectangle returns a W×H rectangle.
// Returns lattice.ErrInvalidShape if w or h is not positive, if the layout is
// unknown, or if the shoved axis wraps with an odd extent.
func NewRectangle(w, h int, opts ...ShapeOption) (Rectangle, error) {
	if w <= 0 || h <= 0 {
		return Rectangle{}, fmt.Errorf("%w: rectangle extent %dx%d", lattice.ErrInvalidShape, w, h)
	}
	if h > math.MaxInt/w {
		return Rectangle{}, fmt.Errorf("%w: rectangle extent %dx%d overflows the index range", lattice.ErrInvalidShape, w, h)
	}
	var cfg shapeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.layout.Valid() {
		return Rectangle{}, fmt.Errorf("%w: unknown layout %d", lattice.ErrInvalidShape, cfg.layout)
	}
	pointy := cfg.layout.PointyTop()
	if pointy && cfg.wrap.r && h%2 != 0 {
		return Rectangle{}, fmt.Errorf("%w: %s row wrap needs an even height, got %d", lattice.ErrInvalidShape, cfg.layout, h)
	}
	if !pointy && cfg.wrap.q && w%2 != 0 {
		return Rectangle{}, fmt.Errorf("%w: %s column wrap needs an even width, got %d", lattice.ErrInvalidShape, cfg.layout, w)
	}

	return Rectangle{w: w, h: h, wrap: cfg.wrap, layout: cfg.layout}, nil
}

// Width returns the column count.
func (rc Rectangle) Width() int { return rc.w }

// Height returns the row count.
func (rc Rectangle) Height() int { return rc.h }

// WrapQ reports whether columns wrap.
func (rc Rectangle) WrapQ() bool { return rc.wrap.q }

// WrapR reports whether rows wrap.
func (rc Rectangle) WrapR() bool { return rc.wrap.r }

// Layout returns the offset layout.
func (rc Rectangle) Layout() Layout { return rc.layout }

// Len returns W×H.
func (rc Rectangle) Len() int {
	return rc.w * rc.h
}

// Normalize reduces wrapping axes in offset space and converts back to axial.
func (rc Rectangle) Normalize(c Axial) Axial {
	if !rc.wrap.q && !rc.wrap.r {
		return c
	}
	o := rc.layout.FromAxial(c)
	if rc.wrap.r {
		o.Row = mod(o.Row, rc.h)
	}
	if rc.wrap.q {
		o.Col = mod(o.Col, rc.w)
	}

	return rc.layout.ToAxial(o)
}

// InBounds reports whether c lies inside after wrap reduction.
func (rc Rectangle) InBounds(c Axial) bool {
	_, ok := rc.IndexOf(c)

	return ok
}

// IndexOf returns row*W + col in offset space.
func (rc Rectangle) IndexOf(c Axial) (int, bool) {
	o := rc.layout.FromAxial(rc.Normalize(c))
	if o.Col < 0 || o.Col >= rc.w || o.Row < 0 || o.Row >= rc.h {
		return 0, false
	}

	return o.Row*rc.w + o.Col, true
}

// CoordOf converts a row-major offset index back to axial.
func (rc Rectangle) CoordOf(i int) Axial {
	return rc.layout.ToAxial(Offset{Col: i % rc.w, Row: i / rc.w})
}

// RowLens returns the number of cells per index row, top to bottom. Shapes
// are laid out so that consecutive indices fill these rows in order.
func RowLens(s lattice.Shape[Axial]) []int {
	switch sh := s.(type) {
	case Hexagon:
		out := make([]int, 0, 2*sh.radius+1)
		for r := -sh.radius; r <= sh.radius; r++ {
			out = append(out, 2*sh.radius+1-abs(r))
		}
		return out
	case Parallelogram:
		return repeat(sh.w, sh.h)
	case Rectangle:
		return repeat(sh.w, sh.h)
	default:
		return []int{s.Len()}
	}
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}
