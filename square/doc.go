// Package square provides the square-grid coordinate system for package
// lattice: offset coordinates (row, column), a four-direction table and a
// rectangular Shape whose axes are bounded or wrap around (torus).
//
// What:
//
//   - Coord{Row, Col}: signed offset coordinate; validity is the Shape's job.
//   - North, East, South, West: direction table, inverse is (d+2) mod 4.
//   - Shape: Rows×Cols, row-major index, optional wrap per axis.
//   - New / FromValues: build a *lattice.Graph[Coord] (alias Graph).
//
// Why:
//
//   - Tile maps with walls: FromValues marks cells below a threshold absent.
//   - Toroidal worlds: WithTorus makes every cell have four neighbors.
//
// Complexity:
//
//   - Index/Coord/InBounds: O(1).
//   - Neighbors: O(4).
//   - FromValues: O(W×H) time and memory.
//
// Errors:
//
//   - lattice.ErrInvalidShape: zero or negative extent, empty value grid.
//   - ErrNonRectangular: value rows have differing lengths.
package square
