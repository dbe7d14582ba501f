package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// styles is the palette bound to one output. A renderer over a non-terminal
// writer yields plain text.
type styles struct {
	title  lipgloss.Style
	key    lipgloss.Style
	value  lipgloss.Style
	path   lipgloss.Style
	end    lipgloss.Style
	wall   lipgloss.Style
	ground lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(colorCyan),
		key:    r.NewStyle().Foreground(colorGray).Width(8),
		value:  r.NewStyle().Foreground(colorCyan),
		path:   r.NewStyle().Bold(true).Foreground(colorYellow),
		end:    r.NewStyle().Bold(true).Foreground(colorGreen),
		wall:   r.NewStyle().Foreground(colorDim),
		ground: r.NewStyle(),
	}
}

const (
	glyphPath  = "*"
	glyphStart = "S"
	glyphGoal  = "G"
)
