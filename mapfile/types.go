package mapfile

import "errors"

// Sentinel errors for map decoding.
var (
	// ErrUnknownFormat indicates an unsupported encoding.
	ErrUnknownFormat = errors.New("mapfile: unknown format")

	// ErrUnknownKind indicates an unsupported lattice kind.
	ErrUnknownKind = errors.New("mapfile: unknown kind")

	// ErrRaggedRows indicates cells that do not fit the shape's rows.
	ErrRaggedRows = errors.New("mapfile: cells do not match shape rows")

	// ErrInvalidCost indicates a negative or non-finite cost.
	ErrInvalidCost = errors.New("mapfile: invalid cost")

	// ErrInvalidGlyph indicates a blocked glyph or cost key that is not a
	// single character.
	ErrInvalidGlyph = errors.New("mapfile: invalid glyph")

	// ErrUnknownLayout indicates an unsupported hex offset layout name.
	ErrUnknownLayout = errors.New("mapfile: unknown layout")

	// ErrMapTooLarge indicates a shape with more than MaxCells cells.
	ErrMapTooLarge = errors.New("mapfile: map too large")
)

// MaxCells bounds the number of cells a document may declare.
const MaxCells = 1 << 24

// Format selects the document encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the conventional file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Kind names a lattice shape.
type Kind string

const (
	KindSquare           Kind = "square"
	KindHexagon          Kind = "hex-hexagon"
	KindHexParallelogram Kind = "hex-parallelogram"
	KindHexRectangle     Kind = "hex-rectangle"
)

// IsHex reports whether k uses the hexagonal coordinate system.
func (k Kind) IsHex() bool {
	return k == KindHexagon || k == KindHexParallelogram || k == KindHexRectangle
}

// Document is the decoded form of a map file. Zero extents are inferred from
// Cells: rows from the number of lines, cols from the first line and the
// hexagon radius from (lines-1)/2. Layout applies to hex-rectangle only and
// defaults to odd-r.
type Document struct {
	Kind     Kind               `toml:"kind" yaml:"kind"`
	Rows     int                `toml:"rows" yaml:"rows"`
	Cols     int                `toml:"cols" yaml:"cols"`
	Radius   int                `toml:"radius" yaml:"radius"`
	WrapRows bool               `toml:"wrap_rows" yaml:"wrap_rows"`
	WrapCols bool               `toml:"wrap_cols" yaml:"wrap_cols"`
	Layout   string             `toml:"layout" yaml:"layout"`
	Blocked  string             `toml:"blocked" yaml:"blocked"`
	Costs    map[string]float64 `toml:"costs" yaml:"costs"`
	Cells    []string           `toml:"cells" yaml:"cells"`
}

const (
	defaultBlocked = '#'
	defaultGlyph   = '.'
	defaultCost    = 1.0
)

// Neighbor is one present neighbor of a cell.
type Neighbor struct {
	Index     int
	Label     string
	Direction string
}
