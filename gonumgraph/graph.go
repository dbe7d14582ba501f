package gonumgraph

import (
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/latticegraph/lattice"
)

var (
	_ graph.WeightedUndirected = (*Graph[int])(nil)
	_ graph.Undirected         = (*Graph[int])(nil)
)

// Graph is a read-only gonum view of a lattice graph. It reflects mask and
// weight changes made to the underlying lattice after construction.
type Graph[C comparable] struct {
	lg *lattice.Graph[C]
}

// New wraps lg.
func New[C comparable](lg *lattice.Graph[C]) *Graph[C] {
	return &Graph[C]{lg: lg}
}

// Lattice returns the wrapped lattice graph.
func (g *Graph[C]) Lattice() *lattice.Graph[C] {
	return g.lg
}

// Node returns the node with the given ID if it is present, nil otherwise.
func (g *Graph[C]) Node(id int64) graph.Node {
	if !g.contains(id) {
		return nil
	}

	return simple.Node(id)
}

// Nodes returns all present nodes in ascending index order.
func (g *Graph[C]) Nodes() graph.Nodes {
	ids := g.lg.Nodes()
	if len(ids) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(ids))
	for k, id := range ids {
		nodes[k] = simple.Node(id)
	}

	return iterator.NewOrderedNodes(nodes)
}

// From returns the neighbors of id in direction-table order, without
// self-loops or duplicates.
func (g *Graph[C]) From(id int64) graph.Nodes {
	if !g.contains(id) {
		return graph.Empty
	}
	nbrs, err := g.lg.Neighbors(int(id))
	if err != nil || len(nbrs) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, 0, len(nbrs))
	for k, j := range nbrs {
		if int64(j) == id || seen(nbrs[:k], j) {
			continue
		}
		nodes = append(nodes, simple.Node(j))
	}
	if len(nodes) == 0 {
		return graph.Empty
	}

	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports whether x and y are adjacent.
func (g *Graph[C]) HasEdgeBetween(xid, yid int64) bool {
	if xid == yid || !g.contains(xid) || !g.contains(yid) {
		return false
	}

	return g.lg.HasEdge(int(xid), int(yid))
}

// Edge returns the edge from u to v, or nil.
func (g *Graph[C]) Edge(uid, vid int64) graph.Edge {
	return g.WeightedEdge(uid, vid)
}

// EdgeBetween returns the edge between x and y, or nil.
func (g *Graph[C]) EdgeBetween(xid, yid int64) graph.Edge {
	return g.WeightedEdge(xid, yid)
}

// WeightedEdge returns the weighted edge from u to v, or nil.
func (g *Graph[C]) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	if uid == vid || !g.contains(uid) || !g.contains(vid) {
		return nil
	}
	w, ok := g.lg.Weight(int(uid), int(vid))
	if !ok {
		return nil
	}

	return simple.WeightedEdge{F: simple.Node(uid), T: simple.Node(vid), W: w}
}

// WeightedEdgeBetween returns the weighted edge between x and y, or nil.
func (g *Graph[C]) WeightedEdgeBetween(xid, yid int64) graph.WeightedEdge {
	return g.WeightedEdge(xid, yid)
}

// Weight returns the weight of the edge between x and y. A present node has
// weight 0 to itself; non-adjacent pairs report +Inf and false.
func (g *Graph[C]) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid && g.contains(xid) {
		return 0, true
	}
	if e := g.WeightedEdge(xid, yid); e != nil {
		return e.Weight(), true
	}

	return math.Inf(1), false
}

func (g *Graph[C]) contains(id int64) bool {
	return id >= 0 && id <= int64(math.MaxInt) && g.lg.ContainsNode(int(id))
}

// Heuristic adapts a coordinate metric to gonum's A* heuristic. The metric
// must not overestimate the weighted distance for A* to stay optimal.
func Heuristic[C comparable](lg *lattice.Graph[C], metric func(a, b C) float64) path.Heuristic {
	return func(x, y graph.Node) float64 {
		a, errA := lg.Coord(int(x.ID()))
		b, errB := lg.Coord(int(y.ID()))
		if errA != nil || errB != nil {
			return 0
		}

		return metric(a, b)
	}
}

// Materialize copies the present nodes and edges of lg into an explicit
// simple.WeightedUndirectedGraph. Self-loops are dropped and parallel edges
// keep the smallest weight.
// Complexity: O(n·d) time, O(n + E) memory.
func Materialize[C comparable](lg *lattice.Graph[C]) *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, i := range lg.Nodes() {
		out.AddNode(simple.Node(i))
	}
	for _, e := range lg.Edges() {
		if e.From == e.To {
			continue
		}
		if w, ok := out.Weight(int64(e.From), int64(e.To)); ok && w <= e.Weight {
			continue
		}
		out.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.From), T: simple.Node(e.To), W: e.Weight})
	}

	return out
}

func seen(prev []int, j int) bool {
	for _, p := range prev {
		if p == j {
			return true
		}
	}

	return false
}
