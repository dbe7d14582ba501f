package lattice

import "github.com/bits-and-blooms/bitset"

// VisitMap is a dense visited-set keyed by node index, sized once from the
// graph's geometric node count. Traversal algorithms own it; the graph never
// reads it.
type VisitMap struct {
	bits *bitset.BitSet
	n    int
}

// NewVisitMap returns an empty visit map for n indices.
func NewVisitMap(n int) *VisitMap {
	if n < 0 {
		n = 0
	}

	return &VisitMap{bits: bitset.New(uint(n)), n: n}
}

// Visit marks i and reports whether it was unvisited before the call.
// Indices outside [0, Len()) are ignored and reported as already visited.
func (v *VisitMap) Visit(i int) bool {
	if i < 0 || i >= v.n || v.bits.Test(uint(i)) {
		return false
	}
	v.bits.Set(uint(i))

	return true
}

// IsVisited reports whether i has been visited.
func (v *VisitMap) IsVisited(i int) bool {
	return i >= 0 && i < v.n && v.bits.Test(uint(i))
}

// Count returns the number of visited indices.
func (v *VisitMap) Count() int {
	return int(v.bits.Count())
}

// Len returns the number of indices the map can track.
func (v *VisitMap) Len() int {
	return v.n
}

// Reset clears every mark so the map can be reused.
func (v *VisitMap) Reset() {
	v.bits.ClearAll()
}
