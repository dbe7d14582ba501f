package cli

import (
	"strings"

	"github.com/katalvlaran/latticegraph/mapfile"
)

// renderMap draws m row by row, two columns per cell, with route drawn over
// the glyphs. Hex rows are shifted by their indent so neighbors line up.
func renderMap(m *mapfile.Map, route []int, st styles) string {
	on := make(map[int]bool, len(route))
	for _, i := range route {
		on[i] = true
	}
	var b strings.Builder
	for k, row := range m.Rows() {
		b.WriteString(strings.Repeat(" ", m.Indent(k)))
		for c, i := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			switch {
			case len(route) > 0 && i == route[0]:
				b.WriteString(st.end.Render(glyphStart))
			case len(route) > 0 && i == route[len(route)-1]:
				b.WriteString(st.end.Render(glyphGoal))
			case on[i]:
				b.WriteString(st.path.Render(glyphPath))
			case !m.IsOpen(i):
				b.WriteString(st.wall.Render(string(m.Glyph(i))))
			default:
				b.WriteString(st.ground.Render(string(m.Glyph(i))))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
