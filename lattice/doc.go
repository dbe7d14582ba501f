// Package lattice implements implicit graphs over regular lattices.
//
// What:
//
//   - Graph[C] derives every edge from a coordinate, a Shape and a System
//     (direction table) instead of storing adjacency lists.
//   - Mask marks lattice cells as absent (walls, holes) without resizing the
//     lattice or changing any index↔coordinate mapping.
//   - Optional node and edge weight storage, unit weight otherwise.
//   - VisitMap is a dense bitset keyed by node index for traversal algorithms
//     supplied by callers.
//
// Why:
//
//   - Tile maps: O(1) neighbor enumeration with no edge storage at all.
//   - Pathfinding substrates: algorithms only see dense indices, neighbor
//     sequences and edge tests (see package gonumgraph for a gonum view).
//
// Concrete coordinate systems live in packages square and hex.
//
// Complexity:
//
//   - Neighbors, EdgeExists, HasEdge: O(d), d = number of directions (4 or 6).
//   - Index, Coord: O(1) for square shapes, O(log R) for hexagons.
//   - Memory: one bit per cell when a Mask is attached, nothing otherwise.
//
// Errors:
//
//   - ErrInvalidShape: degenerate shape or missing coordinate system.
//   - ErrIndexOutOfRange: index outside [0, Len()).
//   - ErrMaskSize: mask length differs from the geometric node count.
//   - ErrDirection: direction outside the system's table.
//   - ErrOptionViolation: invalid construction option.
//
// Out-of-bounds neighbors and absent cells are never errors; they are simply
// excluded from results.
//
// Concurrency: geometric queries are pure and safe for concurrent readers.
// Mask and weight mutation must be synchronized by the caller.
package lattice
