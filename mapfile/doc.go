// Package mapfile loads lattice maps from TOML or YAML documents.
//
// What:
//
//	A map document names a lattice kind, its extents, wrap flags and, for
//	hex rectangles, the offset layout (odd-r, even-r, odd-q or even-q), and
//	lists cell glyphs row by row in index order. Blocked glyphs become
//	absent cells; every other glyph carries a cost that is used as the node
//	weight, with edge weights set to the mean of the endpoint costs.
//
//	kind    = "square"
//	wrap_cols = true
//	cells = [
//	  ". . # .",
//	  ". ~ # .",
//	  ". . . .",
//	]
//	[costs]
//	"~" = 3
//
// Why:
//
//   - Keep test fixtures and CLI inputs readable as ASCII art.
//   - Expose the decoded lattice directly to gonum algorithms.
//
// Errors:
//
//   - ErrUnknownFormat - the file extension or Format is not TOML or YAML.
//   - ErrUnknownKind   - the kind field names no supported shape.
//   - ErrRaggedRows    - cells do not match the shape's row layout.
//   - ErrInvalidCost   - a cost is negative, NaN or infinite.
//   - ErrInvalidGlyph  - the blocked glyph or a cost key is not one character.
//   - ErrUnknownLayout - the layout field names no hex offset layout.
//   - ErrMapTooLarge   - the shape declares more than MaxCells cells.
//   - lattice.ErrInvalidShape for bad extents, wrap flags or a layout on a
//     kind other than hex-rectangle.
package mapfile
