package lattice

import "fmt"

// IsPresent reports whether cell i is present. Without a mask every valid
// index is present; invalid indices are not.
func (g *Graph[C]) IsPresent(i int) bool {
	return g.ContainsNode(i)
}

// SetPresent opens or closes cell i. The first close on a dense graph
// allocates a mask; node count geometry and indexing never change.
// Returns ErrIndexOutOfRange if i is outside [0, Len()).
func (g *Graph[C]) SetPresent(i int, present bool) error {
	if err := g.checkIndex(i); err != nil {
		return err
	}
	if g.mask == nil {
		if present {
			return nil
		}
		m, err := NewMask(g.n)
		if err != nil {
			return err
		}
		g.mask = m
	}

	return g.mask.SetPresent(i, present)
}

// Mask returns the attached mask, or nil for a dense graph. The returned
// mask is shared with the graph.
func (g *Graph[C]) Mask() *Mask {
	return g.mask
}

// SetMask replaces the existence mask. A nil mask makes the graph dense.
// Returns ErrMaskSize if m does not cover the shape.
func (g *Graph[C]) SetMask(m *Mask) error {
	if m != nil && m.Len() != g.n {
		return fmt.Errorf("%w: mask %d, shape %d", ErrMaskSize, m.Len(), g.n)
	}
	g.mask = m

	return nil
}
