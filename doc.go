// Package latticegraph presents regular lattices (square and hexagonal
// grids) as implicit graphs without materializing edge lists.
//
// What is latticegraph?
//
//	A small set of packages around one generic implicit graph:
//		• lattice    - Shape and System contracts, existence Mask, Graph[C]
//		• square     - four-neighbor grids with per-axis wrap (cylinder, torus)
//		• hex        - axial hex cells, hexagon/parallelogram/rectangle shapes
//		• gonumgraph - gonum graph.WeightedUndirected view for path, traverse, topo
//		• mapfile    - TOML/YAML map documents with glyph costs
//
// Why an implicit graph?
//
//   - O(1) index ↔ coordinate conversion, O(d) neighbor enumeration
//   - Memory is one bit per cell for the mask, plus optional weight arrays
//   - Geometry is immutable; presence toggles at runtime without reindexing
//
// Quick ASCII example (3×4 square, '#' absent):
//
//	. . # .
//	. ~ # .
//	. . . .
//
// The cell at (0,1) has neighbors (1,1) and (0,0); (0,2) has none.
//
//	go install github.com/katalvlaran/latticegraph/cmd/latticegraph@latest
package latticegraph
