package lattice

import (
	"errors"
	"fmt"
)

// Sentinel errors for lattice operations.
var (
	// ErrInvalidShape indicates a degenerate shape (zero or negative extent)
	// or a missing shape/system at construction time.
	ErrInvalidShape = errors.New("lattice: invalid shape")

	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("lattice: index out of range")

	// ErrMaskSize indicates a mask whose length differs from the shape's node count.
	ErrMaskSize = errors.New("lattice: mask size does not match shape")

	// ErrDirection indicates a direction outside the coordinate system's table.
	ErrDirection = errors.New("lattice: direction out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lattice: invalid option supplied")
)

// Direction is a position in a coordinate system's direction table.
type Direction uint8

// Shape describes the extent and boundary behavior of a lattice.
//
// Implementations are immutable value types. IndexOf and CoordOf form a
// bijection between in-bounds coordinates and [0, Len()).
type Shape[C comparable] interface {
	// Len returns the geometric node count.
	Len() int
	// InBounds reports whether c lies inside the shape after wrap reduction.
	InBounds(c C) bool
	// Normalize reduces c on wrapping axes and leaves bounded axes untouched.
	Normalize(c C) C
	// IndexOf returns the dense index of c, or false when c is out of bounds.
	IndexOf(c C) (int, bool)
	// CoordOf is the inverse of IndexOf for every i in [0, Len()).
	CoordOf(i int) C
}

// System is a coordinate system: a fixed direction table and the offset
// arithmetic that goes with it. Step never checks bounds.
type System[C comparable] interface {
	// Directions returns the size of the direction table.
	Directions() int
	// Step adds the unit offset of d to c.
	Step(c C, d Direction) C
	// Inverse returns the direction that undoes d.
	Inverse(d Direction) Direction
	// Name returns a short human-readable label for d.
	Name(d Direction) string
}

// Edge is a transient view of one undirected lattice edge.
type Edge struct {
	From, To int       // node indices
	Dir      Direction // direction from From to To
	Weight   float64
}

// Option configures a Graph at construction.
type Option func(*Options)

// Options holds construction parameters for New.
type Options struct {
	// Mask marks absent cells. Nil means a dense lattice.
	Mask *Mask

	// NodeWeight, if set, initializes node weight storage.
	NodeWeight func(i int) float64

	// EdgeWeight, if set, initializes edge weight storage. It is called once
	// per undirected geometric edge, from its lower-index side, and the
	// result is stored for both directions.
	EdgeWeight func(from, to int, d Direction) float64

	// DefaultWeight is reported when no storage is attached. Default 1.
	DefaultWeight float64

	err error
}

// DefaultOptions returns Options for a dense, unweighted lattice with unit weights.
func DefaultOptions() Options {
	return Options{DefaultWeight: 1}
}

// WithMask attaches an existence mask. Its length must equal the shape's Len.
func WithMask(m *Mask) Option {
	return func(o *Options) {
		o.Mask = m
	}
}

// WithNodeWeights attaches node weight storage initialized from fn.
func WithNodeWeights(fn func(i int) float64) Option {
	return func(o *Options) {
		if fn != nil {
			o.NodeWeight = fn
		}
	}
}

// WithEdgeWeights attaches edge weight storage initialized from fn.
func WithEdgeWeights(fn func(from, to int, d Direction) float64) Option {
	return func(o *Options) {
		if fn != nil {
			o.EdgeWeight = fn
		}
	}
}

// WithDefaultWeight overrides the unit weight reported without storage.
// NaN is rejected with ErrOptionViolation.
func WithDefaultWeight(w float64) Option {
	return func(o *Options) {
		if w != w {
			o.err = fmt.Errorf("%w: default weight is NaN", ErrOptionViolation)
			return
		}
		o.DefaultWeight = w
	}
}
