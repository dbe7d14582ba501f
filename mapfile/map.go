package mapfile

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/latticegraph/gonumgraph"
	"github.com/katalvlaran/latticegraph/lattice"
)

// Map is a decoded lattice with its glyphs. It hides the coordinate type so
// square and hex maps can be handled uniformly by index and label.
type Map struct {
	kind    Kind
	blocked rune
	glyphs  []rune
	rows    [][]int
	indent  []int
	minCost float64

	view  view
	name  func(lattice.Direction) string
	label func(int) string
	index func(a, b int) (int, bool)
	graph Graph
	heur  path.Heuristic
}

// Graph is the gonum view of a map: weighted for path searches and
// undirected for topo.
type Graph interface {
	graph.WeightedUndirected
	graph.Undirected
}

// view is the coordinate-free part of lattice.Graph.
type view interface {
	Len() int
	NodeCount() int
	EdgeCount() int
	IsPresent(i int) bool
	NodeWeight(i int) (float64, error)
	Weight(a, b int) (float64, bool)
	EachNeighbor(i int, fn func(j int, d lattice.Direction) bool) error
}

func bind[C comparable](m *Map, lg *lattice.Graph[C], coord func(a, b int) C, metric func(a, b C) float64) {
	m.view = lg
	m.name = lg.System().Name
	m.label = func(i int) string {
		c, err := lg.Coord(i)
		if err != nil {
			return ""
		}
		return fmt.Sprint(c)
	}
	m.index = func(a, b int) (int, bool) {
		return lg.Index(coord(a, b))
	}
	m.graph = gonumgraph.New(lg)
	if metric != nil {
		m.heur = gonumgraph.Heuristic(lg, metric)
	}
}

// Kind returns the lattice kind.
func (m *Map) Kind() Kind { return m.kind }

// Len returns the geometric cell count.
func (m *Map) Len() int { return m.view.Len() }

// NodeCount returns the number of open cells.
func (m *Map) NodeCount() int { return m.view.NodeCount() }

// EdgeCount returns the number of undirected edges between open cells.
func (m *Map) EdgeCount() int { return m.view.EdgeCount() }

// IsOpen reports whether cell i exists and is not blocked.
func (m *Map) IsOpen(i int) bool { return m.view.IsPresent(i) }

// Blocked returns the glyph marking absent cells.
func (m *Map) Blocked() rune { return m.blocked }

// Glyph returns the glyph of cell i, or 0 for an invalid index.
func (m *Map) Glyph(i int) rune {
	if i < 0 || i >= len(m.glyphs) {
		return 0
	}

	return m.glyphs[i]
}

// Cost returns the node weight of cell i.
func (m *Map) Cost(i int) (float64, error) {
	return m.view.NodeWeight(i)
}

// Weight returns the edge weight between adjacent open cells a and b.
func (m *Map) Weight(a, b int) (float64, bool) {
	return m.view.Weight(a, b)
}

// Label returns the coordinate of cell i as "row,col" for square maps and
// "q,r" for hex maps, or "" for an invalid index.
func (m *Map) Label(i int) string {
	return m.label(i)
}

// Index parses a label produced by Label. Wrapped axes accept any
// representative, so "0,-1" names the last column of a cylinder.
func (m *Map) Index(label string) (int, bool) {
	first, second, ok := strings.Cut(label, ",")
	if !ok {
		return 0, false
	}
	a, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, false
	}
	b, err := strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return 0, false
	}

	return m.index(a, b)
}

// Neighbors returns the open neighbors of cell i with direction names.
func (m *Map) Neighbors(i int) ([]Neighbor, error) {
	var out []Neighbor
	err := m.view.EachNeighbor(i, func(j int, d lattice.Direction) bool {
		out = append(out, Neighbor{Index: j, Label: m.label(j), Direction: m.name(d)})
		return true
	})

	return out, err
}

// Graph returns the map as a gonum weighted undirected graph.
func (m *Map) Graph() Graph {
	return m.graph
}

// Heuristic returns an admissible A* heuristic: lattice distance scaled by
// the cheapest open cell. It is nil for wrapped hex maps, where gonum falls
// back to a null heuristic.
func (m *Map) Heuristic() path.Heuristic {
	return m.heur
}

// Rows returns cell indices grouped by display row, top to bottom.
func (m *Map) Rows() [][]int {
	return m.rows
}

// Indent returns the display offset of row k in half cells.
func (m *Map) Indent(k int) int {
	if k < 0 || k >= len(m.indent) {
		return 0
	}

	return m.indent[k]
}
