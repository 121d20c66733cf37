package listing

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/ells/internal/fs"
	"github.com/alexisbeaulieu97/ells/internal/render"
)

const gridSpacing = 2

// layout is a column-major arrangement of cells.
type layout struct {
	rows   int
	widths []int
}

// fitGrid finds the layout with the fewest rows whose total width fits in
// width. A single column is returned when nothing narrower fits.
func fitGrid(cells []render.Cell, width int) layout {
	n := len(cells)

	widest, total := 0, 0
	for _, c := range cells {
		total += c.Width
		if c.Width > widest {
			widest = c.Width
		}
	}

	for rows := minRows(n, total, width); rows < n; rows++ {
		cols := (n + rows - 1) / rows
		widths := make([]int, cols)
		for i, c := range cells {
			col := i / rows
			if c.Width > widths[col] {
				widths[col] = c.Width
			}
		}

		used := gridSpacing * (cols - 1)
		for _, w := range widths {
			used += w
		}
		if used <= width {
			return layout{rows: rows, widths: widths}
		}
	}

	return layout{rows: n, widths: []int{widest}}
}

// minRows is a lower bound on the rows of any fitting grid. Each column is
// at least as wide as the average of its cells, so the columns together are
// at least total/rows wide, plus the spacing between them.
func minRows(n, total, width int) int {
	if width <= 0 {
		return n
	}
	rows := (total + width - 1) / width
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (l *Lister) renderGrid(files []*fs.File) error {
	if l.opts.Width <= 0 {
		return l.renderLines(files)
	}

	cells := make([]render.Cell, len(files))
	for i, f := range files {
		cells[i] = l.nameCell(f, false)
	}

	grid := fitGrid(cells, l.opts.Width)

	var b strings.Builder
	for row := 0; row < grid.rows; row++ {
		for col := range grid.widths {
			i := col*grid.rows + row
			if i >= len(cells) {
				break
			}
			if col > 0 {
				b.WriteString(strings.Repeat(" ", gridSpacing))
			}
			b.WriteString(cells[i].Render(l.renderer))

			// Pad unless this is the last cell on the row.
			next := (col+1)*grid.rows + row
			if col+1 < len(grid.widths) && next < len(cells) {
				b.WriteString(strings.Repeat(" ", grid.widths[col]-cells[i].Width))
			}
		}
		b.WriteByte('\n')
	}

	if _, err := fmt.Fprint(l.out, b.String()); err != nil {
		return fmt.Errorf("write listing: %w", err)
	}
	return nil
}
