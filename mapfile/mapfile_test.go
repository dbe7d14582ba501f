package mapfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/latticegraph/lattice"
	"github.com/katalvlaran/latticegraph/mapfile"
)

func ids(nodes []graph.Node) []int {
	out := make([]int, len(nodes))
	for k, n := range nodes {
		out[k] = int(n.ID())
	}

	return out
}

//----------------------------------------------------------------------------//
// Loading
//----------------------------------------------------------------------------//

// TestLoad_SquareTOML checks counts, costs and weights of the cave map.
func TestLoad_SquareTOML(t *testing.T) {
	m, err := mapfile.Load(filepath.Join("testdata", "cave.toml"))
	require.NoError(t, err)
	require.Equal(t, mapfile.KindSquare, m.Kind())
	require.Equal(t, 12, m.Len())
	require.Equal(t, 10, m.NodeCount())
	require.Equal(t, 11, m.EdgeCount())
	require.False(t, m.IsOpen(2))
	require.Equal(t, '~', m.Glyph(5))

	c, err := m.Cost(5)
	require.NoError(t, err)
	require.Equal(t, 3.0, c)
	w, ok := m.Weight(4, 5)
	require.True(t, ok)
	require.Equal(t, 2.0, w)

	require.Equal(t, "1,3", m.Label(7))
	i, ok := m.Index("1, 3")
	require.True(t, ok)
	require.Equal(t, 7, i)
	_, ok = m.Index("3,0")
	require.False(t, ok)
	_, ok = m.Index("bogus")
	require.False(t, ok)
}

// TestLoad_HexYAML checks the hexagon ring and its display indents.
func TestLoad_HexYAML(t *testing.T) {
	m, err := mapfile.Load(filepath.Join("testdata", "ring.yaml"))
	require.NoError(t, err)
	require.Equal(t, mapfile.KindHexagon, m.Kind())
	require.Equal(t, 7, m.Len())
	require.Equal(t, 6, m.NodeCount())
	require.Equal(t, 6, m.EdgeCount())
	require.Equal(t, 'x', m.Blocked())

	center, ok := m.Index("0,0")
	require.True(t, ok)
	require.Equal(t, 3, center)
	nbrs, err := m.Neighbors(center)
	require.NoError(t, err)
	require.Empty(t, nbrs)

	nbrs, err = m.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []mapfile.Neighbor{
		{Index: 1, Label: "1,-1", Direction: "E"},
		{Index: 2, Label: "-1,0", Direction: "SW"},
	}, nbrs)

	require.Equal(t, [][]int{{0, 1}, {2, 3, 4}, {5, 6}}, m.Rows())
	require.Equal(t, []int{1, 0, 1}, []int{m.Indent(0), m.Indent(1), m.Indent(2)})
}

// TestLoad_OpenCylinder checks an open map without cells and wrapped labels.
func TestLoad_OpenCylinder(t *testing.T) {
	m, err := mapfile.Load(filepath.Join("testdata", "belt.yml"))
	require.NoError(t, err)
	require.Equal(t, 10, m.NodeCount())
	require.Equal(t, '.', m.Glyph(0))

	last, ok := m.Index("0,-1")
	require.True(t, ok)
	require.Equal(t, 4, last)
	require.Equal(t, 15, m.EdgeCount())
}

// TestLoad_Errors covers extension and read failures.
func TestLoad_Errors(t *testing.T) {
	_, err := mapfile.Load("map.json")
	require.ErrorIs(t, err, mapfile.ErrUnknownFormat)

	_, err = mapfile.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

//----------------------------------------------------------------------------//
// Parsing
//----------------------------------------------------------------------------//

// TestParse_Errors covers document validation.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"UnknownKind", "kind: triangle\nrows: 2\ncols: 2\n", mapfile.ErrUnknownKind},
		{"MissingKind", "rows: 2\ncols: 2\n", mapfile.ErrUnknownKind},
		{"RowCount", "kind: square\nrows: 3\ncells: ['..', '..']\n", mapfile.ErrRaggedRows},
		{"RowLength", "kind: square\ncells: ['...', '..']\n", mapfile.ErrRaggedRows},
		{"HexRowLength", "kind: hex-hexagon\ncells: ['..', '..', '..']\n", mapfile.ErrRaggedRows},
		{"NoExtent", "kind: square\n", lattice.ErrInvalidShape},
		{"WrappedHexagon", "kind: hex-hexagon\nradius: 2\nwrap_cols: true\n", lattice.ErrInvalidShape},
		{"OddRectangleRowWrap", "kind: hex-rectangle\nrows: 3\ncols: 4\nwrap_rows: true\n", lattice.ErrInvalidShape},
		{"LongGlyph", "kind: square\nrows: 1\ncols: 1\ncosts: {ab: 1}\n", mapfile.ErrInvalidGlyph},
		{"NegativeCost", "kind: square\nrows: 1\ncols: 1\ncosts: {'.': -1}\n", mapfile.ErrInvalidCost},
		{"LongBlocked", "kind: square\nrows: 1\ncols: 1\nblocked: '##'\n", mapfile.ErrInvalidGlyph},
		{"UnknownLayout", "kind: hex-rectangle\nrows: 2\ncols: 2\nlayout: odd-x\n", mapfile.ErrUnknownLayout},
		{"LayoutOnSquare", "kind: square\nrows: 2\ncols: 2\nlayout: odd-q\n", lattice.ErrInvalidShape},
		{"LayoutOnParallelogram", "kind: hex-parallelogram\nrows: 2\ncols: 2\nlayout: odd-r\n", lattice.ErrInvalidShape},
		{"OddFlatTopColumnWrap", "kind: hex-rectangle\nrows: 2\ncols: 3\nlayout: even-q\nwrap_cols: true\n", lattice.ErrInvalidShape},
		{"TooLarge", "kind: square\nrows: 100000\ncols: 100000\n", mapfile.ErrMapTooLarge},
		{"HugeExtent", "kind: square\nrows: 3000000000\ncols: 3000000000\n", mapfile.ErrMapTooLarge},
		{"OverflowExtent", "kind: square\nrows: 4611686018427387905\ncols: 4\n", lattice.ErrInvalidShape},
		{"HugeHexagon", "kind: hex-hexagon\nradius: 100000\n", mapfile.ErrMapTooLarge},
		{"HugeRectangle", "kind: hex-rectangle\nrows: 5000\ncols: 5000\nlayout: odd-q\n", mapfile.ErrMapTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapfile.Parse([]byte(tc.doc), mapfile.FormatYAML)
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := mapfile.Parse([]byte("kind = "), mapfile.FormatTOML)
	require.Error(t, err)
	_, err = mapfile.Parse(nil, mapfile.Format(9))
	require.ErrorIs(t, err, mapfile.ErrUnknownFormat)
}

// TestParse_HexShapes checks parallelogram and rectangle layouts.
func TestParse_HexShapes(t *testing.T) {
	m, err := mapfile.Parse([]byte(`
kind = "hex-parallelogram"
cells = ["...", "...", "..."]
`), mapfile.FormatTOML)
	require.NoError(t, err)
	require.Equal(t, 9, m.Len())
	require.Equal(t, []int{0, 1, 2}, []int{m.Indent(0), m.Indent(1), m.Indent(2)})

	m, err = mapfile.Parse([]byte(`
kind = "hex-rectangle"
rows = 4
cols = 3
wrap_cols = true
`), mapfile.FormatTOML)
	require.NoError(t, err)
	require.Equal(t, 12, m.Len())
	require.Equal(t, []int{0, 1, 0, 1}, []int{m.Indent(0), m.Indent(1), m.Indent(2), m.Indent(3)})
	require.Nil(t, m.Heuristic())
}

// TestParse_FlatTopRectangle selects a flat-top layout by name.
func TestParse_FlatTopRectangle(t *testing.T) {
	m, err := mapfile.Parse([]byte(`
kind = "hex-rectangle"
layout = "even-q"
cells = ["...", "..."]
`), mapfile.FormatTOML)
	require.NoError(t, err)
	require.Equal(t, 6, m.Len())
	require.Equal(t, []int{0, 0}, []int{m.Indent(0), m.Indent(1)})

	nbrs, err := m.Neighbors(0)
	require.NoError(t, err)
	got := make([]int, len(nbrs))
	for k, n := range nbrs {
		got[k] = n.Index
	}
	require.ElementsMatch(t, []int{1, 3, 4}, got)

	m, err = mapfile.Parse([]byte("kind: hex-rectangle\nlayout: even-r\ncells: ['..', '..']\n"), mapfile.FormatYAML)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, []int{m.Indent(0), m.Indent(1)})
}

//----------------------------------------------------------------------------//
// Search through gonum
//----------------------------------------------------------------------------//

// TestShortestPath solves the cave map with Dijkstra and A*.
func TestShortestPath(t *testing.T) {
	m, err := mapfile.Load(filepath.Join("testdata", "cave.toml"))
	require.NoError(t, err)
	g := m.Graph()
	want := []int{0, 4, 8, 9, 10, 11, 7, 3}

	nodes, w := path.DijkstraFrom(g.Node(0), g).To(3)
	require.Equal(t, want, ids(nodes))
	require.Equal(t, 7.0, w)

	require.NotNil(t, m.Heuristic())
	sp, _ := path.AStar(g.Node(0), g.Node(3), g, m.Heuristic())
	nodes, w = sp.To(3)
	require.Equal(t, want, ids(nodes))
	require.Equal(t, 7.0, w)
}

// TestShortestPath_HexRing walks around the blocked centre.
func TestShortestPath_HexRing(t *testing.T) {
	m, err := mapfile.Load(filepath.Join("testdata", "ring.yaml"))
	require.NoError(t, err)
	g := m.Graph()

	sp, _ := path.AStar(g.Node(0), g.Node(6), g, m.Heuristic())
	nodes, w := sp.To(6)
	require.Len(t, nodes, 4)
	require.Equal(t, 6.0, w)
}
