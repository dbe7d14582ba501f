package lattice

import "math"

// Weighted reports whether edge weight storage is attached.
func (g *Graph[C]) Weighted() bool {
	return g.edgeW != nil
}

// DefaultWeight returns the weight reported when no storage is attached.
func (g *Graph[C]) DefaultWeight() float64 {
	return g.unit
}

// NodeWeight returns the weight of node i, or the default weight when no
// node storage is attached.
// Returns ErrIndexOutOfRange if i is outside [0, Len()).
func (g *Graph[C]) NodeWeight(i int) (float64, error) {
	if err := g.checkIndex(i); err != nil {
		return 0, err
	}
	if g.nodeW == nil {
		return g.unit, nil
	}

	return g.nodeW[i], nil
}

// SetNodeWeight stores w for node i, allocating storage on first use.
// Absent nodes keep their weight so it survives reopening the cell.
func (g *Graph[C]) SetNodeWeight(i int, w float64) error {
	if err := g.checkIndex(i); err != nil {
		return err
	}
	if g.nodeW == nil {
		g.nodeW = make([]float64, g.n)
		for k := range g.nodeW {
			g.nodeW[k] = g.unit
		}
	}
	g.nodeW[i] = w

	return nil
}

// EdgeWeight returns the weight of the edge leaving i in direction d.
// ok is false when the edge does not exist (border, wrap-less axis or absent
// endpoint); that is not an error.
func (g *Graph[C]) EdgeWeight(i int, d Direction) (w float64, ok bool, err error) {
	if _, ok, err = g.Step(i, d); err != nil || !ok {
		return 0, ok, err
	}

	return g.edgeWeight(i, d), true, nil
}

// SetEdgeWeight stores w for the geometric edge leaving i in direction d and
// for its reverse, keeping the undirected view symmetric. The mask is not
// consulted so weights can be prepared for closed cells. ok is false when
// the direction leaves a bounded axis.
func (g *Graph[C]) SetEdgeWeight(i int, d Direction, w float64) (ok bool, err error) {
	if err = g.checkIndex(i); err != nil {
		return false, err
	}
	if err = g.checkDirection(d); err != nil {
		return false, err
	}
	j, ok := g.target(i, d)
	if !ok {
		return false, nil
	}
	if g.edgeW == nil {
		g.edgeW = make([]float64, g.n*g.dirs)
		for k := range g.edgeW {
			g.edgeW[k] = g.unit
		}
	}
	g.edgeW[i*g.dirs+int(d)] = w
	g.edgeW[j*g.dirs+int(g.system.Inverse(d))] = w

	return true, nil
}

// Weight returns the weight of the edge joining a and b. When a degenerate
// wrapped axis joins them by several directions the smallest weight wins.
func (g *Graph[C]) Weight(a, b int) (float64, bool) {
	if !g.ContainsNode(a) || !g.ContainsNode(b) {
		return 0, false
	}
	best, found := math.Inf(1), false
	c := g.shape.CoordOf(a)
	for d := 0; d < g.dirs; d++ {
		dir := Direction(d)
		if j, ok := g.shape.IndexOf(g.system.Step(c, dir)); ok && j == b {
			if w := g.edgeWeight(a, dir); w < best {
				best = w
			}
			found = true
		}
	}
	if !found {
		return 0, false
	}

	return best, true
}

func (g *Graph[C]) edgeWeight(i int, d Direction) float64 {
	if g.edgeW == nil {
		return g.unit
	}

	return g.edgeW[i*g.dirs+int(d)]
}
