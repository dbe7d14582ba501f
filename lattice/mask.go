package lattice

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Mask holds one presence bit per lattice cell. A cleared bit marks the cell
// as absent: it contributes no node and no edge.
//
// Mask is not safe for concurrent mutation.
type Mask struct {
	bits *bitset.BitSet
	n    int
}

// NewMask returns a mask of n cells, all present.
// Returns ErrMaskSize if n <= 0.
// Complexity: O(n/64).
func NewMask(n int) (*Mask, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: length %d", ErrMaskSize, n)
	}
	b := bitset.New(uint(n))
	b.FlipRange(0, uint(n))

	return &Mask{bits: b, n: n}, nil
}

// NewEmptyMask returns a mask of n cells, all absent.
// Returns ErrMaskSize if n <= 0.
func NewEmptyMask(n int) (*Mask, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: length %d", ErrMaskSize, n)
	}

	return &Mask{bits: bitset.New(uint(n)), n: n}, nil
}

// Len returns the number of cells covered by the mask.
func (m *Mask) Len() int {
	return m.n
}

// IsPresent reports whether cell i is present. Out-of-range indices are absent.
func (m *Mask) IsPresent(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}

	return m.bits.Test(uint(i))
}

// SetPresent opens (true) or closes (false) cell i.
// Returns ErrIndexOutOfRange if i is outside [0, Len()).
func (m *Mask) SetPresent(i int, present bool) error {
	if i < 0 || i >= m.n {
		return fmt.Errorf("%w: index %d, mask length %d", ErrIndexOutOfRange, i, m.n)
	}
	m.bits.SetTo(uint(i), present)

	return nil
}

// Count returns the number of present cells.
// Complexity: O(n/64).
func (m *Mask) Count() int {
	return int(m.bits.Count())
}

// Fill sets every cell to present or every cell to absent.
func (m *Mask) Fill(present bool) {
	m.bits.ClearAll()
	if present {
		m.bits.FlipRange(0, uint(m.n))
	}
}

// Each calls fn for every present index in ascending order until fn returns false.
func (m *Mask) Each(fn func(i int) bool) {
	for i, ok := m.bits.NextSet(0); ok && int(i) < m.n; i, ok = m.bits.NextSet(i + 1) {
		if !fn(int(i)) {
			return
		}
	}
}

// Clone returns an independent copy of m.
func (m *Mask) Clone() *Mask {
	return &Mask{bits: m.bits.Clone(), n: m.n}
}

// Equal reports whether m and o cover the same cells with the same bits.
func (m *Mask) Equal(o *Mask) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.n == o.n && m.bits.Equal(o.bits)
}
