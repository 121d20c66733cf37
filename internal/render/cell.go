// Package render turns column values into styled text cells.
//
// Renderers never see a concrete theme. Each one asks a narrow colours
// interface for the styles it needs, which keeps theme layout and column
// rendering independent of each other.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/ells/internal/style"
)

// Segment is a run of text sharing one style.
type Segment struct {
	Style style.Style
	Text  string
}

// Cell is the styled contents of one column of one row.
type Cell struct {
	Segments []Segment

	// Width is the number of terminal columns the text occupies.
	Width int
}

// Paint returns a cell holding text in a single style.
func Paint(s style.Style, text string) Cell {
	return Cell{
		Segments: []Segment{{Style: s, Text: text}},
		Width:    lipgloss.Width(text),
	}
}

// Blank returns an empty cell.
func Blank() Cell {
	return Cell{}
}

// Push appends a segment and grows the width to match.
func (c *Cell) Push(s style.Style, text string) {
	c.Segments = append(c.Segments, Segment{Style: s, Text: text})
	c.Width += lipgloss.Width(text)
}

// Append adds all segments of other to c.
func (c *Cell) Append(other Cell) {
	c.Segments = append(c.Segments, other.Segments...)
	c.Width += other.Width
}

// Text returns the unstyled contents of the cell.
func (c Cell) Text() string {
	var b strings.Builder
	for _, seg := range c.Segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Render paints every segment with renderer r and joins the result.
func (c Cell) Render(r *lipgloss.Renderer) string {
	var b strings.Builder
	for _, seg := range c.Segments {
		b.WriteString(seg.Style.Render(r, seg.Text))
	}
	return b.String()
}
