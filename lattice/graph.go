package lattice

import (
	"fmt"
)

// Graph is an implicit graph over a lattice. Nodes are dense indices in
// [0, Len()); edges are computed on demand from Shape, System and Mask.
//
// The shape is immutable for the life of the graph. The mask and weight
// storage may be mutated in place; callers must serialize such writes with
// concurrent readers.
type Graph[C comparable] struct {
	shape  Shape[C]
	system System[C]
	dirs   int
	n      int

	mask  *Mask     // nil: every cell present
	nodeW []float64 // nil: unit node weights
	edgeW []float64 // nil: unit edge weights, else indexed i*dirs + d
	unit  float64
}

// New builds a lattice graph over shape using the direction table of system.
// Returns ErrInvalidShape for a nil shape/system or an empty shape,
// ErrMaskSize if the mask does not cover the shape, and ErrOptionViolation
// for invalid options.
// Complexity: O(1) without weights, O(n·d) when weight storage is initialized.
func New[C comparable](shape Shape[C], system System[C], opts ...Option) (*Graph[C], error) {
	if shape == nil || system == nil {
		return nil, fmt.Errorf("%w: shape and system are required", ErrInvalidShape)
	}
	n := shape.Len()
	if n <= 0 {
		return nil, fmt.Errorf("%w: node count %d", ErrInvalidShape, n)
	}
	if system.Directions() <= 0 {
		return nil, fmt.Errorf("%w: empty direction table", ErrInvalidShape)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := &Graph[C]{
		shape:  shape,
		system: system,
		dirs:   system.Directions(),
		n:      n,
		unit:   o.DefaultWeight,
	}
	if o.Mask != nil {
		if o.Mask.Len() != n {
			return nil, fmt.Errorf("%w: mask %d, shape %d", ErrMaskSize, o.Mask.Len(), n)
		}
		g.mask = o.Mask
	}
	if o.NodeWeight != nil {
		g.nodeW = make([]float64, n)
		for i := range g.nodeW {
			g.nodeW[i] = o.NodeWeight(i)
		}
	}
	if o.EdgeWeight != nil {
		g.edgeW = make([]float64, n*g.dirs)
		for i := 0; i < n; i++ {
			for d := 0; d < g.dirs; d++ {
				dir := Direction(d)
				j, ok := g.target(i, dir)
				if !ok || !g.forward(i, j, dir) {
					continue
				}
				w := o.EdgeWeight(i, j, dir)
				g.edgeW[i*g.dirs+d] = w
				g.edgeW[j*g.dirs+int(g.system.Inverse(dir))] = w
			}
		}
	}

	return g, nil
}

// Shape returns the graph's shape.
func (g *Graph[C]) Shape() Shape[C] {
	return g.shape
}

// System returns the graph's coordinate system.
func (g *Graph[C]) System() System[C] {
	return g.system
}

// Directions returns the size of the direction table.
func (g *Graph[C]) Directions() int {
	return g.dirs
}

// Len returns the geometric node count, independent of the mask.
// Use it to size index-keyed storage such as VisitMap.
func (g *Graph[C]) Len() int {
	return g.n
}

// NodeCount returns the number of present nodes.
// Complexity: O(1) without mask, O(n/64) with mask.
func (g *Graph[C]) NodeCount() int {
	if g.mask == nil {
		return g.n
	}

	return g.mask.Count()
}

// ContainsNode reports whether i is a valid, present node.
func (g *Graph[C]) ContainsNode(i int) bool {
	return i >= 0 && i < g.n && g.present(i)
}

// Index converts a coordinate to its node index. Wrapping axes are reduced
// first. The result ignores the mask.
func (g *Graph[C]) Index(c C) (int, bool) {
	return g.shape.IndexOf(c)
}

// Coord converts a node index to its coordinate. The result ignores the mask.
// Returns ErrIndexOutOfRange if i is outside [0, Len()).
func (g *Graph[C]) Coord(i int) (C, error) {
	if err := g.checkIndex(i); err != nil {
		var zero C
		return zero, err
	}

	return g.shape.CoordOf(i), nil
}

// Neighbors returns the present neighbors of i in direction-table order.
// An absent node has no neighbors.
// Returns ErrIndexOutOfRange if i is outside [0, Len()).
// Complexity: O(d).
func (g *Graph[C]) Neighbors(i int) ([]int, error) {
	return g.AppendNeighbors(make([]int, 0, g.dirs), i)
}

// AppendNeighbors appends the present neighbors of i to dst and returns the
// extended slice, so hot loops can reuse one buffer.
func (g *Graph[C]) AppendNeighbors(dst []int, i int) ([]int, error) {
	if err := g.checkIndex(i); err != nil {
		return dst, err
	}
	if !g.present(i) {
		return dst, nil
	}
	c := g.shape.CoordOf(i)
	for d := 0; d < g.dirs; d++ {
		j, ok := g.shape.IndexOf(g.system.Step(c, Direction(d)))
		if !ok || !g.present(j) {
			continue
		}
		dst = append(dst, j)
	}

	return dst, nil
}

// EachNeighbor calls fn for every present neighbor of i in direction-table
// order, stopping early when fn returns false.
// Returns ErrIndexOutOfRange if i is outside [0, Len()).
func (g *Graph[C]) EachNeighbor(i int, fn func(j int, d Direction) bool) error {
	if err := g.checkIndex(i); err != nil {
		return err
	}
	if !g.present(i) {
		return nil
	}
	c := g.shape.CoordOf(i)
	for d := 0; d < g.dirs; d++ {
		j, ok := g.shape.IndexOf(g.system.Step(c, Direction(d)))
		if !ok || !g.present(j) {
			continue
		}
		if !fn(j, Direction(d)) {
			return nil
		}
	}

	return nil
}

// Step returns the neighbor of i in direction d when that edge exists.
// Returns ErrIndexOutOfRange or ErrDirection for invalid arguments.
func (g *Graph[C]) Step(i int, d Direction) (int, bool, error) {
	if err := g.checkIndex(i); err != nil {
		return 0, false, err
	}
	if err := g.checkDirection(d); err != nil {
		return 0, false, err
	}
	if !g.present(i) {
		return 0, false, nil
	}
	j, ok := g.target(i, d)
	if !ok || !g.present(j) {
		return 0, false, nil
	}

	return j, true, nil
}

// EdgeExists reports whether the edge leaving i in direction d passes both
// the bounds check and the presence check, without building a neighbor list.
func (g *Graph[C]) EdgeExists(i int, d Direction) (bool, error) {
	_, ok, err := g.Step(i, d)

	return ok, err
}

// HasEdge reports whether b is a neighbor of a. Invalid indices yield false.
// The relation is symmetric for a fixed shape and mask.
func (g *Graph[C]) HasEdge(a, b int) bool {
	_, ok := g.Direction(a, b)

	return ok
}

// Direction returns the first direction, in table order, leading from a to b.
func (g *Graph[C]) Direction(a, b int) (Direction, bool) {
	if !g.ContainsNode(a) || !g.ContainsNode(b) {
		return 0, false
	}
	c := g.shape.CoordOf(a)
	for d := 0; d < g.dirs; d++ {
		if j, ok := g.shape.IndexOf(g.system.Step(c, Direction(d))); ok && j == b {
			return Direction(d), true
		}
	}

	return 0, false
}

// Degree returns the number of present neighbors of i, counting parallel
// edges of degenerate wrapped axes separately.
func (g *Graph[C]) Degree(i int) (int, error) {
	deg := 0
	err := g.EachNeighbor(i, func(int, Direction) bool {
		deg++
		return true
	})

	return deg, err
}

// Nodes returns the present node indices in ascending order.
// Complexity: O(n).
func (g *Graph[C]) Nodes() []int {
	out := make([]int, 0, g.NodeCount())
	if g.mask == nil {
		for i := 0; i < g.n; i++ {
			out = append(out, i)
		}
		return out
	}
	g.mask.Each(func(i int) bool {
		out = append(out, i)
		return true
	})

	return out
}

// VisitMap returns a fresh visited-set sized to Len().
func (g *Graph[C]) VisitMap() *VisitMap {
	return NewVisitMap(g.n)
}

// forward reports whether (i, d) -> j is the side an undirected edge is
// reported and initialized from: the lower index, or for a self-loop the
// direction whose inverse comes later in the table.
func (g *Graph[C]) forward(i, j int, d Direction) bool {
	return i < j || (i == j && g.system.Inverse(d) > d)
}

// target is the geometric neighbor of i in direction d, mask ignored.
func (g *Graph[C]) target(i int, d Direction) (int, bool) {
	return g.shape.IndexOf(g.system.Step(g.shape.CoordOf(i), d))
}

func (g *Graph[C]) present(i int) bool {
	return g.mask == nil || g.mask.IsPresent(i)
}

func (g *Graph[C]) checkIndex(i int) error {
	if i < 0 || i >= g.n {
		return fmt.Errorf("%w: index %d, node count %d", ErrIndexOutOfRange, i, g.n)
	}

	return nil
}

func (g *Graph[C]) checkDirection(d Direction) error {
	if int(d) >= g.dirs {
		return fmt.Errorf("%w: direction %d, table size %d", ErrDirection, d, g.dirs)
	}

	return nil
}
