package gonumgraph_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/latticegraph/gonumgraph"
	"github.com/katalvlaran/latticegraph/hex"
	"github.com/katalvlaran/latticegraph/lattice"
	"github.com/katalvlaran/latticegraph/square"
)

// wallGrid is a 3×3 grid with the upper two cells of the middle column closed:
//
//	. # .
//	. # .
//	. . .
func wallGrid(t *testing.T) *square.Graph {
	t.Helper()
	g, err := square.FromValues([][]int{
		{1, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
	}, 1)
	require.NoError(t, err)

	return g
}

func ids(nodes []graph.Node) []int64 {
	out := make([]int64, len(nodes))
	for k, n := range nodes {
		out[k] = n.ID()
	}

	return out
}

// TestNodesAndFrom checks node membership and neighbor iteration.
func TestNodesAndFrom(t *testing.T) {
	g := gonumgraph.New(wallGrid(t))

	require.Equal(t, 7, g.Nodes().Len())
	require.Nil(t, g.Node(1))
	require.Nil(t, g.Node(99))
	require.NotNil(t, g.Node(0))

	require.Equal(t, []int64{5, 7}, ids(graph.NodesOf(g.From(8))))
	require.Equal(t, 0, g.From(1).Len())
	require.True(t, g.HasEdgeBetween(0, 3))
	require.False(t, g.HasEdgeBetween(0, 1))
	require.Nil(t, g.Edge(0, 1))

	w, ok := g.Weight(0, 3)
	require.True(t, ok)
	require.Equal(t, 1.0, w)
	w, ok = g.Weight(0, 0)
	require.True(t, ok)
	require.Equal(t, 0.0, w)
	w, ok = g.Weight(0, 8)
	require.False(t, ok)
	require.True(t, math.IsInf(w, 1))
}

// TestDijkstraAroundWall runs gonum Dijkstra across the lattice.
func TestDijkstraAroundWall(t *testing.T) {
	g := gonumgraph.New(wallGrid(t))

	shortest := path.DijkstraFrom(simple.Node(0), g)
	p, weight := shortest.To(2)
	require.Equal(t, 6.0, weight)
	require.Equal(t, []int64{0, 3, 6, 7, 8, 5, 2}, ids(p))
}

// TestAStarWithManhattan runs gonum A* with a lattice heuristic.
func TestAStarWithManhattan(t *testing.T) {
	lg := wallGrid(t)
	g := gonumgraph.New(lg)
	h := gonumgraph.Heuristic(lg, func(a, b square.Coord) float64 {
		return float64(square.Manhattan(a, b))
	})

	shortest, expanded := path.AStar(simple.Node(0), simple.Node(2), g, h)
	p, weight := shortest.To(2)
	require.Equal(t, 6.0, weight)
	require.Len(t, p, 7)
	require.Positive(t, expanded)
}

// TestBreadthFirstDepth walks the lattice with gonum's BFS.
func TestBreadthFirstDepth(t *testing.T) {
	g := gonumgraph.New(wallGrid(t))

	depth := -1
	var bf traverse.BreadthFirst
	found := bf.Walk(g, simple.Node(0), func(n graph.Node, d int) bool {
		if n.ID() == 2 {
			depth = d
			return true
		}
		return false
	})
	require.NotNil(t, found)
	require.Equal(t, int64(2), found.ID())
	require.Equal(t, 6, depth)
}

// TestConnectedComponents splits a grid with a closed middle row.
func TestConnectedComponents(t *testing.T) {
	lg, err := square.FromValues([][]int{
		{1, 1, 1},
		{0, 0, 0},
		{1, 1, 1},
	}, 1)
	require.NoError(t, err)

	comps := topo.ConnectedComponents(gonumgraph.New(lg))
	require.Len(t, comps, 2)
	var got [][]int64
	for _, c := range comps {
		members := ids(c)
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		got = append(got, members)
	}
	sort.Slice(got, func(i, j int) bool { return got[i][0] < got[j][0] })
	require.Equal(t, [][]int64{{0, 1, 2}, {6, 7, 8}}, got)

	// Reopening a cell of the middle row joins them; the view is live.
	require.NoError(t, lg.SetPresent(4, true))
	require.Len(t, topo.ConnectedComponents(gonumgraph.New(lg)), 1)
}

// TestWeightedDetour makes a direct edge expensive and checks the detour.
func TestWeightedDetour(t *testing.T) {
	lg, err := square.NewGrid(2, 3)
	require.NoError(t, err)
	ok, err := lg.SetEdgeWeight(0, square.East, 10)
	require.NoError(t, err)
	require.True(t, ok)
	w, ok := lg.Weight(1, 0)
	require.True(t, ok)
	require.Equal(t, 10.0, w, "weights are symmetric")

	p, weight := path.DijkstraFrom(simple.Node(0), gonumgraph.New(lg)).To(1)
	require.Equal(t, 3.0, weight)
	require.Equal(t, []int64{0, 3, 4, 1}, ids(p))
}

// TestWeightSymmetry: an edge initializer that depends on argument order
// still yields one weight per undirected edge.
func TestWeightSymmetry(t *testing.T) {
	shape, err := square.NewShape(1, 2)
	require.NoError(t, err)
	lg, err := square.New(shape, lattice.WithEdgeWeights(func(from, to int, _ lattice.Direction) float64 {
		return float64(from*10 + to)
	}))
	require.NoError(t, err)

	g := gonumgraph.New(lg)
	ab, ok := g.Weight(0, 1)
	require.True(t, ok)
	ba, ok := g.Weight(1, 0)
	require.True(t, ok)
	require.Equal(t, ab, ba)
	require.Equal(t, g.WeightedEdgeBetween(0, 1).Weight(), g.WeightedEdgeBetween(1, 0).Weight())
}

// TestDegenerateTorusFolding: a 1×2 torus has loops and parallel edges
// in the lattice but a single simple edge in the gonum view.
func TestDegenerateTorusFolding(t *testing.T) {
	lg, err := square.NewGrid(1, 2, square.WithTorus())
	require.NoError(t, err)
	require.Equal(t, 4, lg.EdgeCount())

	g := gonumgraph.New(lg)
	require.Equal(t, []int64{1}, ids(graph.NodesOf(g.From(0))))
	require.False(t, g.HasEdgeBetween(0, 0))

	m := gonumgraph.Materialize(lg)
	require.Equal(t, 2, m.Nodes().Len())
	require.Equal(t, 1, m.Edges().Len())
}

// TestMaterializeHexagon copies a radius-2 hexagon into an explicit graph.
func TestMaterializeHexagon(t *testing.T) {
	shape, err := hex.NewHexagon(2)
	require.NoError(t, err)
	lg, err := hex.New(shape)
	require.NoError(t, err)

	m := gonumgraph.Materialize(lg)
	require.Equal(t, 19, m.Nodes().Len())
	require.Equal(t, lg.EdgeCount(), m.Edges().Len())

	from, _ := lg.Index(hex.Axial{Q: -2, R: 0})
	to, _ := lg.Index(hex.Axial{Q: 2, R: 0})
	h := gonumgraph.Heuristic(lg, func(a, b hex.Axial) float64 {
		return float64(hex.Distance(a, b))
	})
	shortest, _ := path.AStar(simple.Node(int64(from)), simple.Node(int64(to)), gonumgraph.New(lg), h)
	_, weight := shortest.To(int64(to))
	require.Equal(t, 4.0, weight)
}
