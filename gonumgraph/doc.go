// Package gonumgraph exposes a *lattice.Graph as a gonum graph so the
// algorithms in gonum.org/v1/gonum/graph/... (path, traverse, topo) run on
// the implicit lattice without materializing it.
//
// Node IDs are lattice indices. Absent cells are not nodes. The view is a
// simple undirected graph: self-loops and parallel edges produced by
// wrapped axes of extent 1 or 2 are folded away, keeping the smallest weight.
//
// Materialize copies the lattice into an explicit
// simple.WeightedUndirectedGraph when a mutable adjacency structure is needed.
package gonumgraph
