package lattice

// Edges returns every undirected edge between present nodes exactly once.
//
// An edge (i, d) → j is reported from the side where i < j; a self-loop on a
// wrapped axis of extent 1 is reported for the direction whose inverse comes
// later in the table. Order: ascending From, then direction-table order.
// Complexity: O(n·d).
func (g *Graph[C]) Edges() []Edge {
	var out []Edge
	g.eachEdge(func(e Edge) {
		out = append(out, e)
	})

	return out
}

// EdgeCount returns len(Edges()) without allocating the slice.
func (g *Graph[C]) EdgeCount() int {
	count := 0
	g.eachEdge(func(Edge) {
		count++
	})

	return count
}

func (g *Graph[C]) eachEdge(fn func(Edge)) {
	for i := 0; i < g.n; i++ {
		if !g.present(i) {
			continue
		}
		c := g.shape.CoordOf(i)
		for d := 0; d < g.dirs; d++ {
			dir := Direction(d)
			j, ok := g.shape.IndexOf(g.system.Step(c, dir))
			if !ok || !g.present(j) {
				continue
			}
			if !g.forward(i, j, dir) {
				continue
			}
			fn(Edge{From: i, To: j, Dir: dir, Weight: g.edgeWeight(i, dir)})
		}
	}
}
