package mapfile

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/latticegraph/hex"
	"github.com/katalvlaran/latticegraph/lattice"
	"github.com/katalvlaran/latticegraph/square"
)

// Load reads the map at path, choosing the decoder from the extension:
// .toml, .yaml or .yml.
func Load(path string) (*Map, error) {
	var f Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		f = FormatTOML
	case ".yaml", ".yml":
		f = FormatYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: read %s: %w", path, err)
	}

	return Parse(data, f)
}

// Parse decodes data in format f and builds the map.
func Parse(data []byte, f Format) (*Map, error) {
	var doc Document
	switch f {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("mapfile: decode %s: %w", f, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("mapfile: decode %s: %w", f, err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}

	return Build(doc)
}

// Build turns a decoded document into a map.
// Complexity: O(n·d) for n cells and d directions.
func Build(doc Document) (*Map, error) {
	blocked, err := glyphOf(doc.Blocked, defaultBlocked)
	if err != nil {
		return nil, err
	}
	costs, err := parseCosts(doc.Costs)
	if err != nil {
		return nil, err
	}
	rows := make([]string, len(doc.Cells))
	for k, line := range doc.Cells {
		rows[k] = strings.ReplaceAll(line, " ", "")
	}
	if doc.Rows == 0 {
		doc.Rows = len(rows)
	}
	if doc.Cols == 0 && len(rows) > 0 {
		doc.Cols = utf8.RuneCountInString(rows[0])
	}

	if doc.Layout != "" && doc.Kind != KindHexRectangle {
		return nil, fmt.Errorf("%w: layout %q on kind %q", lattice.ErrInvalidShape, doc.Layout, doc.Kind)
	}

	m := &Map{kind: doc.Kind, blocked: blocked}
	switch doc.Kind {
	case KindSquare:
		var opts []square.ShapeOption
		if doc.WrapRows {
			opts = append(opts, square.WithWrapRows())
		}
		if doc.WrapCols {
			opts = append(opts, square.WithWrapCols())
		}
		shape, err := square.NewShape(doc.Rows, doc.Cols, opts...)
		if err != nil {
			return nil, err
		}
		if err := checkSize(shape.Len()); err != nil {
			return nil, err
		}
		lens := make([]int, doc.Rows)
		for k := range lens {
			lens[k] = doc.Cols
		}
		lopts, err := m.layout(rows, lens, costs)
		if err != nil {
			return nil, err
		}
		g, err := square.New(shape, lopts...)
		if err != nil {
			return nil, err
		}
		bind(m, g, func(a, b int) square.Coord {
			return square.Coord{Row: a, Col: b}
		}, func(a, b square.Coord) float64 {
			return float64(shape.Distance(a, b)) * m.minCost
		})

	case KindHexagon, KindHexParallelogram, KindHexRectangle:
		var opts []hex.ShapeOption
		if doc.WrapCols {
			opts = append(opts, hex.WithWrapQ())
		}
		if doc.WrapRows {
			opts = append(opts, hex.WithWrapR())
		}
		var shape lattice.Shape[hex.Axial]
		switch doc.Kind {
		case KindHexagon:
			if len(opts) > 0 {
				return nil, fmt.Errorf("%w: a hexagon cannot wrap", lattice.ErrInvalidShape)
			}
			radius := doc.Radius
			if radius == 0 && len(rows) > 0 {
				radius = (len(rows) - 1) / 2
			}
			shape, err = hex.NewHexagon(radius)
		case KindHexParallelogram:
			shape, err = hex.NewParallelogram(doc.Cols, doc.Rows, opts...)
		default:
			if doc.Layout != "" {
				l, ok := hex.ParseLayout(doc.Layout)
				if !ok {
					return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, doc.Layout)
				}
				opts = append(opts, hex.WithLayout(l))
			}
			shape, err = hex.NewRectangle(doc.Cols, doc.Rows, opts...)
		}
		if err != nil {
			return nil, err
		}
		if err := checkSize(shape.Len()); err != nil {
			return nil, err
		}
		lopts, err := m.layout(rows, hex.RowLens(shape), costs)
		if err != nil {
			return nil, err
		}
		g, err := hex.New(shape, lopts...)
		if err != nil {
			return nil, err
		}
		var metric func(a, b hex.Axial) float64
		if len(opts) == 0 {
			metric = func(a, b hex.Axial) float64 {
				return float64(hex.Distance(a, b)) * m.minCost
			}
		}
		bind(m, g, func(a, b int) hex.Axial {
			return hex.Axial{Q: a, R: b}
		}, metric)
		if rc, ok := shape.(hex.Rectangle); !ok || rc.Layout().PointyTop() {
			m.indentHex(g)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, doc.Kind)
	}

	return m, nil
}

func checkSize(n int) error {
	if n > MaxCells {
		return fmt.Errorf("%w: %d cells, limit %d", ErrMapTooLarge, n, MaxCells)
	}

	return nil
}

// layout fills glyphs, rows and cost data, and returns the graph options
// carrying mask and weights. An empty cell list means an open map.
func (m *Map) layout(lines []string, lens []int, costs map[rune]float64) ([]lattice.Option, error) {
	n := 0
	for _, l := range lens {
		n += l
	}
	m.glyphs = make([]rune, 0, n)
	if len(lines) == 0 {
		for i := 0; i < n; i++ {
			m.glyphs = append(m.glyphs, defaultGlyph)
		}
	} else {
		if len(lines) != len(lens) {
			return nil, fmt.Errorf("%w: %d rows, want %d", ErrRaggedRows, len(lines), len(lens))
		}
		for k, line := range lines {
			if got := utf8.RuneCountInString(line); got != lens[k] {
				return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, k, got, lens[k])
			}
			m.glyphs = append(m.glyphs, []rune(line)...)
		}
	}

	m.rows = make([][]int, len(lens))
	m.indent = make([]int, len(lens))
	start := 0
	for k, l := range lens {
		m.rows[k] = make([]int, l)
		for c := range m.rows[k] {
			m.rows[k][c] = start + c
		}
		start += l
	}

	mask, err := lattice.NewMask(n)
	if err != nil {
		return nil, err
	}
	weights := make([]float64, n)
	m.minCost = math.Inf(1)
	for i, gl := range m.glyphs {
		if gl == m.blocked {
			_ = mask.SetPresent(i, false)
			continue
		}
		w, ok := costs[gl]
		if !ok {
			w = defaultCost
		}
		weights[i] = w
		m.minCost = math.Min(m.minCost, w)
	}
	if math.IsInf(m.minCost, 1) {
		m.minCost = 0
	}

	return []lattice.Option{
		lattice.WithMask(mask),
		lattice.WithNodeWeights(func(i int) float64 { return weights[i] }),
		lattice.WithEdgeWeights(func(from, to int, _ lattice.Direction) float64 {
			return (weights[from] + weights[to]) / 2
		}),
	}, nil
}

// indentHex records each row's horizontal offset in half cells so that
// pointy-top rows line up when printed two characters per cell. Flat-top
// rectangles keep zero indents.
func (m *Map) indentHex(g *hex.Graph) {
	least := math.MaxInt
	for k, row := range m.rows {
		a, _ := g.Coord(row[0])
		m.indent[k] = 2*a.Q + a.R
		least = min(least, m.indent[k])
	}
	for k := range m.indent {
		m.indent[k] -= least
	}
}

func glyphOf(s string, def rune) (rune, error) {
	if s == "" {
		return def, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single character", ErrInvalidGlyph, s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}

func parseCosts(in map[string]float64) (map[rune]float64, error) {
	out := make(map[rune]float64, len(in))
	for k, v := range in {
		if utf8.RuneCountInString(k) != 1 {
			return nil, fmt.Errorf("%w: cost key %q is not a single character", ErrInvalidGlyph, k)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: glyph %q costs %v", ErrInvalidCost, k, v)
		}
		r, _ := utf8.DecodeRuneInString(k)
		out[r] = v
	}

	return out, nil
}
